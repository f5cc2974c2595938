// Package batch renders independent frames on a worker pool. Every frame
// gets its own Device, so workers never share mutable pixels; results are
// gathered in frame order once all workers are done.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/raster"
)

// FrameFunc renders frame index into a freshly allocated Device.
type FrameFunc func(ctx context.Context, index int) (*raster.Device, error)

// Config holds the shared settings for a batch run.
type Config struct {
	Workers int

	// When OutputDir is empty frames are only kept in memory.
	OutputDir string
	Format    export.Format
	Palette   colors.Palette
	Scale     int

	// Progress is logged every ProgressInterval; zero means every 2s.
	ProgressInterval time.Duration
	Logger           *slog.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index  int
	Device *raster.Device
	Image  string // file written, relative to OutputDir
	Err    error
}

func (r Result) Success() bool { return r.Err == nil }

// Run renders frames 0..n-1 with fn using a worker pool. Frames not started
// before ctx is cancelled are reported with ctx.Err(). A non-positive n
// renders nothing.
func Run(ctx context.Context, cfg Config, n int, fn FrameFunc) []Result {
	if n <= 0 {
		return []Result{}
	}
	log := loggerOrNop(cfg.Logger)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	results := make([]Result, n)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", n, "frames_per_sec", rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(ctx, cfg, log, idx, fn)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < n; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	log.Debug("batch finished", "frames", n, "elapsed", time.Since(start))
	return results
}

func processFrame(ctx context.Context, cfg Config, log *slog.Logger, idx int, fn FrameFunc) Result {
	if err := ctx.Err(); err != nil {
		return Result{Index: idx, Err: err}
	}

	dev, err := fn(ctx, idx)
	if err != nil {
		log.Warn("frame failed", "frame", idx, "err", err)
		return Result{Index: idx, Err: err}
	}
	res := Result{Index: idx, Device: dev}
	if cfg.OutputDir == "" {
		return res
	}

	img, err := export.ToImage(dev, cfg.Palette)
	if err != nil {
		res.Err = err
		log.Warn("frame export failed", "frame", idx, "err", err)
		return res
	}
	img = export.Upscale(img, cfg.Scale)

	res.Image = FrameName(idx, cfg.Format)
	if err := export.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		res.Err = err
		log.Warn("frame write failed", "frame", idx, "err", err)
		return res
	}
	log.Debug("frame written", "frame", idx, "path", res.Image)
	return res
}

// FrameName is the file name used for frame idx.
func FrameName(idx int, f export.Format) string {
	return fmt.Sprintf("frame_%04d%s", idx, f.Ext())
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Success() {
			out = append(out, r)
		}
	}
	return out
}
