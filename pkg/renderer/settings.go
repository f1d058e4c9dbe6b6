package renderer

import (
	"fmt"

	"github.com/lucerna-render/lucerna/pkg/sampler"
)

// RenderSettings is the immutable configuration for one render
type RenderSettings struct {
	Width           int          // image resolution in pixels
	Height          int
	SamplesPerPixel int          // independent samples accumulated per pixel
	TileSize        int          // edge length of scheduler tiles
	MaxDepth        int          // hard bound on path length
	RRStartDepth    int          // first bounce at which Russian roulette applies
	Sampler         sampler.Kind // pixel sampling strategy
	Seed            int64        // global seed; renders with equal seeds are identical
	NumWorkers      int          // parallel tile workers, 0 = number of CPUs
}

// DefaultSettings returns sensible defaults for the given resolution.
// The tile size is clamped so small images still validate.
func DefaultSettings(width, height int) RenderSettings {
	return RenderSettings{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 16,
		TileSize:        min(64, width, height),
		MaxDepth:        8,
		RRStartDepth:    3,
		Sampler:         sampler.Stratified,
		Seed:            1,
		NumWorkers:      0,
	}
}

// Validate rejects invalid configurations before any worker is
// dispatched. Errors name the violated precondition.
func (s RenderSettings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", s.SamplesPerPixel)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", s.TileSize)
	}
	if s.TileSize > s.Width || s.TileSize > s.Height {
		return fmt.Errorf("tile size %d exceeds image dimensions %dx%d", s.TileSize, s.Width, s.Height)
	}
	if s.MaxDepth <= 0 {
		return fmt.Errorf("max path depth must be positive, got %d", s.MaxDepth)
	}
	if s.RRStartDepth < 0 {
		return fmt.Errorf("russian roulette start depth must not be negative, got %d", s.RRStartDepth)
	}
	if s.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", s.NumWorkers)
	}
	switch s.Sampler {
	case sampler.Uniform, sampler.Stratified:
	default:
		return fmt.Errorf("unknown sampler kind %q", s.Sampler)
	}
	return nil
}
