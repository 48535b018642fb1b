package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/internal/config"
	"github.com/df07/go-whitted-raytracer/internal/logger"
	"github.com/df07/go-whitted-raytracer/pkg/encoder"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var listScenes = flag.Bool("list", false, "List available scenes and exit")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *listScenes {
		if err := printScenes(os.Stdout, cfg.Render.SceneDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	enc, err := encoder.ForFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	selectedScene, err := createScene(cfg.Render)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderConfig(cfg.Render), logger.Named("renderer"))
	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	outputDir := createOutputDir(cfg.Output.Dir, selectedScene.Name)
	timestamp := time.Now().Format("20060102_150405")
	img := frame.Image()

	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s%s", timestamp, enc.Extension()))
	if err := encoder.WriteFile(filename, img, enc); err != nil {
		return err
	}
	logger.Info("render saved", zap.String("path", filename), zap.Duration("elapsed", stats.Elapsed))

	if cfg.Output.Thumbnail > 0 {
		thumbName := filepath.Join(outputDir, fmt.Sprintf("render_%s_thumb%s", timestamp, enc.Extension()))
		if err := encoder.WriteFile(thumbName, encoder.Thumbnail(img, cfg.Output.Thumbnail), enc); err != nil {
			return err
		}
		logger.Info("thumbnail saved", zap.String("path", thumbName))
	}

	return nil
}

// createScene resolves the configured scene and applies any size override
func createScene(rc config.RenderConfig) (*scene.Scene, error) {
	s, err := loaders.ResolveScene(rc.Scene, rc.SceneDir)
	if err != nil {
		return nil, err
	}

	if rc.Width > 0 {
		s.Width = rc.Width
	}
	if rc.Height > 0 {
		s.Height = rc.Height
	}
	return s, nil
}

// renderConfig maps render settings onto the raytracer configuration
func renderConfig(rc config.RenderConfig) renderer.Config {
	rendererConfig := renderer.DefaultConfig()
	rendererConfig.MaxDepth = rc.MaxDepth
	rendererConfig.Workers = rc.Workers
	if rc.Workers == 0 {
		rendererConfig.Workers = runtime.NumCPU()
	}
	return rendererConfig
}

// createOutputDir returns the per-scene output directory
func createOutputDir(base, sceneName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, sceneName)
	if name == "" {
		name = "scene"
	}
	return filepath.Join(base, name)
}

func printScenes(w io.Writer, sceneDir string) error {
	scenes, err := scene.ListAllScenes(sceneDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scenes {
		fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description)
	}
	return nil
}
