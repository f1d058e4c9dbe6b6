// Package post turns accumulated mean radiance into displayable pixel
// values: tone mapping, then gamma correction, then white balance.
// Every stage is a pure per-pixel function with no cross-pixel dependency.
package post

import (
	"image"
	"image/color"
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/renderer"
)

// Reinhard compresses unbounded radiance into [0,1) per channel with
// c/(c+1). Monotonic in luminance; zero maps to zero.
func Reinhard(c core.Vec3) core.Vec3 {
	return core.NewVec3(
		c.X/(c.X+1.0),
		c.Y/(c.Y+1.0),
		c.Z/(c.Z+1.0),
	)
}

// GammaCorrect converts linear values to display-encoded values with
// the exponent 1/gamma
func GammaCorrect(c core.Vec3, gamma float64) core.Vec3 {
	invGamma := 1.0 / gamma
	return core.NewVec3(
		math.Pow(c.X, invGamma),
		math.Pow(c.Y, invGamma),
		math.Pow(c.Z, invGamma),
	)
}

// WhiteBalance scales each channel to neutralize color temperature bias
func WhiteBalance(c core.Vec3, balance core.Vec3) core.Vec3 {
	return c.MultiplyVec(balance)
}

// Pipeline is the post-processing configuration applied to a finished
// framebuffer
type Pipeline struct {
	Gamma   float64   // display gamma exponent
	Balance core.Vec3 // per-channel white balance scale
}

// DefaultPipeline returns the standard 2.2 gamma with neutral balance
func DefaultPipeline() Pipeline {
	return Pipeline{
		Gamma:   2.2,
		Balance: core.NewVec3(1, 1, 1),
	}
}

// Process runs one mean-radiance value through the pipeline stages in
// order: tone map, gamma, white balance
func (p Pipeline) Process(c core.Vec3) core.Vec3 {
	c = Reinhard(c)
	c = GammaCorrect(c, p.Gamma)
	c = WhiteBalance(c, p.Balance)
	return c
}

// Apply processes the finalized framebuffer into an 8-bit RGBA image
// ready for the image writer
func (p Pipeline) Apply(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := p.Process(fb.Mean(x, y)).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X*255.0 + 0.5),
				G: uint8(c.Y*255.0 + 0.5),
				B: uint8(c.Z*255.0 + 0.5),
				A: 255,
			})
		}
	}
	return img
}
