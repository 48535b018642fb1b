// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when configuration values are out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// RenderConfig selects the scene and how it is traced.
type RenderConfig struct {
	Scene    string `yaml:"scene"`     // Built-in scene name or path to a YAML scene file
	SceneDir string `yaml:"scene_dir"` // Directory scanned for scene files
	Width    int    `yaml:"width"`     // Overrides the scene width when > 0
	Height   int    `yaml:"height"`    // Overrides the scene height when > 0
	Workers  int    `yaml:"workers"`   // Scanline workers, 1 renders sequentially
	MaxDepth int    `yaml:"max_depth"` // Reflection recursion limit
}

// OutputConfig controls where and how images are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Format    string `yaml:"format"`    // png, bmp or tiff
	Thumbnail int    `yaml:"thumbnail"` // Width of an extra preview image, 0 disables it
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port      int `yaml:"port"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:    "reference",
			SceneDir: "scenes",
			Workers:  1,
			MaxDepth: 2,
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Port:      8080,
			MaxWidth:  2000,
			MaxHeight: 2000,
		},
	}
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	switch {
	case c.Render.Scene == "":
		return fmt.Errorf("%w: render.scene is empty", ErrInvalidConfig)
	case c.Render.Width < 0 || c.Render.Height < 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	case c.Render.Workers < 0:
		return fmt.Errorf("%w: render.workers must be >= 0, got %d", ErrInvalidConfig, c.Render.Workers)
	case c.Render.MaxDepth < 0:
		return fmt.Errorf("%w: render.max_depth must be >= 0, got %d", ErrInvalidConfig, c.Render.MaxDepth)
	case c.Output.Thumbnail < 0:
		return fmt.Errorf("%w: output.thumbnail must be >= 0, got %d", ErrInvalidConfig, c.Output.Thumbnail)
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: server.port %d", ErrInvalidConfig, c.Server.Port)
	case c.Server.MaxWidth <= 0 || c.Server.MaxHeight <= 0:
		return fmt.Errorf("%w: server size limit %dx%d", ErrInvalidConfig, c.Server.MaxWidth, c.Server.MaxHeight)
	}
	return nil
}
