package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/mesh"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	vertices := flag.String("vertices", "", "Vertex table CSV (default: built-in prism)")
	faces := flag.String("faces", "", "Face table CSV (requires -vertices)")
	outputDir := flag.String("output", "", "Output directory (default: ./frames)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 100)")
	format := flag.String("format", "", "Image format: webp, tga, bmp, png (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor for written frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	lineColor := flag.Int("color", 4, "Palette index for the wireframe")
	border := flag.Int("border", 0, "Palette index for a viewport border (0: none)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		VerticesCSV: *vertices,
		FacesCSV:    *faces,
		OutputDir:   *outputDir,
		Frames:      *frames,
		Format:      *format,
		Scale:       *scale,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pal := colors.DefaultPalette()
	if !pal.Contains(colors.ColorID(*lineColor)) || !pal.Contains(colors.ColorID(*border)) {
		fmt.Fprintf(os.Stderr, "Error: palette has %d entries\n", len(pal))
		os.Exit(1)
	}

	// Load object
	obj := mesh.Prism()
	if cfg.VerticesCSV != "" {
		var err error
		obj, err = mesh.LoadFiles(cfg.VerticesCSV, cfg.FacesCSV)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			os.Exit(1)
		}
	}

	// Validate already parsed these; errors cannot occur here.
	window, _ := cfg.WindowValue()
	axis, _ := cfg.AxisValue()
	outFormat, _ := export.ParseFormat(cfg.Format)

	scene := batch.Scene{
		Object:      obj,
		Camera:      cfg.Camera(),
		Window:      window,
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		Axis:        axis,
		StepDegrees: cfg.StepDegrees,
		Color:       colors.ColorID(*lineColor),
		Border:      colors.ColorID(*border),
	}

	fmt.Println("Wireframe Renderer")
	fmt.Printf("Object: %d faces, %d vertices\n", len(obj), obj.NumVertices())
	fmt.Printf("Frames: %d, Device: %dx%d, Workers: %d\n", cfg.Frames, cfg.Cols, cfg.Rows, cfg.Workers)
	fmt.Printf("Output: %s (%s)\n", cfg.OutputDir, outFormat)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Workers:   cfg.Workers,
		OutputDir: cfg.OutputDir,
		Format:    outFormat,
		Palette:   pal,
		Scale:     cfg.Scale,
		Logger:    logger,
	}

	results := batch.Run(ctx, batchCfg, cfg.Frames, scene.Frame)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := batch.Failed(results)
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, r := range failed[:limit] {
			fmt.Printf("  frame %d: %v\n", r.Index, r.Err)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	m := batch.NewManifest(cfg.Rows, cfg.Cols, cfg.Scale, cfg.FPS, results)
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
