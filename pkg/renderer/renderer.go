// Package renderer schedules the render: it partitions the image into
// tiles, dispatches them across a fixed pool of workers, and
// accumulates per-pixel radiance into a shared framebuffer. Tiles own
// disjoint pixel ranges, so workers write without locking; the scene is
// read-only and shared freely.
package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/integrator"
	"github.com/lucerna-render/lucerna/pkg/sampler"
	"github.com/lucerna-render/lucerna/pkg/scene"
)

// Renderer renders a scene with the configured settings
type Renderer struct {
	scene      *scene.Scene
	settings   RenderSettings
	integrator *integrator.PathTracer
	logger     core.Logger
}

// tileResult is what a worker reports back per tile
type tileResult struct {
	tile    Tile
	samples int
	err     error
}

// NewRenderer creates a renderer, rejecting invalid settings before
// any work starts
func NewRenderer(sc *scene.Scene, settings RenderSettings, logger core.Logger) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render settings: %w", err)
	}
	if sc == nil {
		return nil, fmt.Errorf("scene must not be nil")
	}
	if logger == nil {
		logger = core.NewSilentLogger()
	}
	return &Renderer{
		scene:      sc,
		settings:   settings,
		integrator: integrator.NewPathTracer(settings.MaxDepth, settings.RRStartDepth),
		logger:     logger,
	}, nil
}

// Settings returns the renderer's configuration
func (r *Renderer) Settings() RenderSettings {
	return r.settings
}

// Render runs the full render and returns the finalized framebuffer.
// Cancelling the context stops dispatching new tiles; in-flight tiles
// finish, and already-written pixels remain valid partial results. A
// worker panic is contained to its tile: every other tile completes and
// the failures are reported together as a *TileError.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, error) {
	fb := NewFramebuffer(r.settings.Width, r.settings.Height)
	tiles := NewTileGrid(r.settings.Width, r.settings.Height, r.settings.TileSize)

	numWorkers := r.settings.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	r.logger.Printf("Rendering %dx%d, %d spp, %d tiles, %d workers\n",
		r.settings.Width, r.settings.Height, r.settings.SamplesPerPixel, len(tiles), numWorkers)
	start := time.Now()

	tasks := make(chan Tile, len(tiles))
	results := make(chan tileResult, len(tiles))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tasks {
				results <- r.renderTile(tile, fb)
			}
		}()
	}

	// Dispatch every tile exactly once; stop early on cancellation
	dispatched := 0
	for _, tile := range tiles {
		if ctx.Err() != nil {
			break
		}
		tasks <- tile
		dispatched++
	}
	close(tasks)

	wg.Wait()
	close(results)

	totalSamples := 0
	var failures []TileFailure
	for res := range results {
		totalSamples += res.samples
		if res.err != nil {
			failures = append(failures, TileFailure{TileID: res.tile.ID, Bounds: res.tile.Bounds, Err: res.err})
		}
	}

	elapsed := time.Since(start)
	r.logger.Printf("Render finished in %v (%d tiles, %d samples)\n", elapsed, dispatched, totalSamples)

	if len(failures) > 0 {
		return fb, &TileError{Failures: failures}
	}
	if err := ctx.Err(); err != nil {
		return fb, err
	}
	return fb, nil
}

// renderTile renders every pixel of a tile to completion. Each pixel
// draws from its own deterministically seeded sampler, so the result is
// independent of tile scheduling and worker count.
func (r *Renderer) renderTile(tile Tile, fb *Framebuffer) (res tileResult) {
	res = tileResult{tile: tile}

	defer func() {
		if rec := recover(); rec != nil {
			res.err = fmt.Errorf("panic: %v", rec)
		}
	}()

	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			smp, err := sampler.ForPixel(r.settings.Sampler, r.settings.SamplesPerPixel, x, y, r.settings.Seed)
			if err != nil {
				res.err = err // unreachable after Validate, kept for safety
				return res
			}

			for i := 0; i < smp.SamplesPerPixel(); i++ {
				smp.StartSample(i)
				ray := r.scene.GenerateRay(x, y, smp.Get2D())
				color := r.integrator.Li(ray, r.scene, smp)
				fb.AddSample(x, y, color)
				res.samples++
			}
		}
	}
	return res
}
