package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagScene     = flag.String("scene", "", "Built-in scene name or path to a YAML scene file")
	flagWidth     = flag.Int("width", 0, "Image width (overrides the scene)")
	flagHeight    = flag.Int("height", 0, "Image height (overrides the scene)")
	flagWorkers   = flag.Int("workers", -1, "Scanline workers (1 = sequential, 0 = one per CPU)")
	flagFormat    = flag.String("format", "", "Output format: png, bmp or tiff")
	flagOutput    = flag.String("out", "", "Output directory")
	flagThumbnail = flag.Int("thumbnail", -1, "Width of an extra preview image (0 disables)")
	flagPort      = flag.Int("port", 0, "Web server port")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Render.Scene = *flagScene
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagOutput != "" {
		cfg.Output.Dir = *flagOutput
	}
	if *flagThumbnail >= 0 {
		cfg.Output.Thumbnail = *flagThumbnail
	}
	if *flagPort > 0 {
		cfg.Server.Port = *flagPort
	}
}
