package renderer

import "github.com/lucerna-render/lucerna/pkg/core"

// PixelStats accumulates the radiance samples of one pixel
type PixelStats struct {
	ColorSum    core.Vec3 // running sum of radiance samples
	SampleCount int       // number of samples accumulated
}

// AddSample adds one radiance sample to the accumulator
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorSum = ps.ColorSum.Add(color)
	ps.SampleCount++
}

// Mean returns the arithmetic mean of the accumulated samples,
// zero for a pixel that has no samples yet
func (ps *PixelStats) Mean() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorSum.Multiply(1.0 / float64(ps.SampleCount))
}

// Framebuffer is the 2D grid of per-pixel accumulators. During a render
// it is written exclusively through tile-scoped accumulation: tiles
// cover disjoint pixel ranges, so no synchronization is needed. Once
// rendering completes it is read-only.
type Framebuffer struct {
	Width  int
	Height int
	pixels []PixelStats
}

// NewFramebuffer allocates a framebuffer of the given resolution
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// At returns the accumulator for pixel (x, y)
func (fb *Framebuffer) At(x, y int) *PixelStats {
	return &fb.pixels[y*fb.Width+x]
}

// AddSample accumulates one radiance sample into pixel (x, y)
func (fb *Framebuffer) AddSample(x, y int, color core.Vec3) {
	fb.At(x, y).AddSample(color)
}

// Mean returns the mean radiance of pixel (x, y)
func (fb *Framebuffer) Mean(x, y int) core.Vec3 {
	return fb.At(x, y).Mean()
}

// TotalSamples returns the number of samples accumulated across all
// pixels
func (fb *Framebuffer) TotalSamples() int {
	total := 0
	for i := range fb.pixels {
		total += fb.pixels[i].SampleCount
	}
	return total
}
