package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/loaders"
	"github.com/lucerna-render/lucerna/pkg/post"
	"github.com/lucerna-render/lucerna/pkg/renderer"
	"github.com/lucerna-render/lucerna/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Built-in scene: 'default', 'cornell' or 'mirror'")
	sceneFile := flag.String("file", "", "TOML scene description (overrides -scene)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>.png)")
	width := flag.Int("width", 0, "Image width override")
	height := flag.Int("height", 0, "Image height override")
	samples := flag.Int("samples", 0, "Samples per pixel override")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	seed := flag.Int64("seed", 0, "Sampler seed override")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Lucerna path tracer")
		fmt.Println("Usage: lucerna [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Built-in scenes:")
		fmt.Println("  default - Sphere on a ground plane under an area light")
		fmt.Println("  cornell - Cornell box with mirror and glass spheres")
		fmt.Println("  mirror  - Mirror sphere over a colored plane")
		return
	}

	var logger core.Logger
	if *quiet {
		logger = core.NewSilentLogger()
	} else {
		logger = core.NewStdoutLogger()
	}

	if err := run(*sceneName, *sceneFile, *output, *width, *height, *samples, *workers, *seed, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName, sceneFile, output string, width, height, samples, workers int, seed int64, logger core.Logger) error {
	sc, settings, pipeline, name, err := loadScene(sceneName, sceneFile, width, height)
	if err != nil {
		return err
	}

	if samples > 0 {
		settings.SamplesPerPixel = samples
	}
	if workers > 0 {
		settings.NumWorkers = workers
	}
	if seed != 0 {
		settings.Seed = seed
	}

	r, err := renderer.NewRenderer(sc, settings, logger)
	if err != nil {
		return err
	}

	// Ctrl-C cancels the render instead of killing the process mid-write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Printf("Rendering %s at %dx%d, %d spp\n", name, settings.Width, settings.Height, settings.SamplesPerPixel)
	start := time.Now()
	fb, err := r.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Render finished in %v\n", time.Since(start).Round(time.Millisecond))

	img := pipeline.Apply(fb)

	if output == "" {
		output = filepath.Join("output", name+".png")
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	logger.Printf("Saved %s\n", output)
	return nil
}

// loadScene resolves either a TOML scene file or a built-in preset
func loadScene(sceneName, sceneFile string, width, height int) (*scene.Scene, renderer.RenderSettings, post.Pipeline, string, error) {
	if sceneFile != "" {
		result, err := loaders.LoadScene(sceneFile)
		if err != nil {
			return nil, renderer.RenderSettings{}, post.Pipeline{}, "", err
		}

		// Resolution overrides rebuild the camera so the file's aspect
		// configuration follows the new size
		if width > 0 {
			result.Settings.Width = width
		}
		if height > 0 {
			result.Settings.Height = height
		}
		if width > 0 || height > 0 {
			result.Settings.TileSize = min(result.Settings.TileSize, result.Settings.Width, result.Settings.Height)
			cfg := result.CameraConfig
			cfg.Width = result.Settings.Width
			cfg.Height = result.Settings.Height
			result.Scene.Camera = scene.NewCamera(cfg)
		}

		name := filepath.Base(sceneFile)
		name = name[:len(name)-len(filepath.Ext(name))]
		return result.Scene, result.Settings, result.Pipeline, name, nil
	}

	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}

	var sc *scene.Scene
	switch sceneName {
	case "default":
		sc = scene.NewDefaultScene(width, height)
	case "cornell":
		sc = scene.NewCornellScene(width, height)
	case "mirror":
		sc = scene.NewMirrorTestScene(width, height)
	default:
		return nil, renderer.RenderSettings{}, post.Pipeline{}, "", fmt.Errorf("unknown scene %q (want default, cornell or mirror)", sceneName)
	}

	return sc, renderer.DefaultSettings(width, height), post.DefaultPipeline(), sceneName, nil
}
