package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucerna-render/lucerna/pkg/core"
)

func TestFramebufferAccumulation(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	fb.AddSample(1, 2, core.NewVec3(1, 0, 0))
	fb.AddSample(1, 2, core.NewVec3(0, 1, 0))

	mean := fb.Mean(1, 2)
	assert.Equal(t, core.NewVec3(0.5, 0.5, 0), mean)
	assert.Equal(t, 2, fb.At(1, 2).SampleCount)
}

func TestFramebufferEmptyPixelMeanIsZero(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	assert.True(t, fb.Mean(0, 0).IsZero())
}

func TestFramebufferTotalSamples(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.AddSample(0, 0, core.NewVec3(1, 1, 1))
	fb.AddSample(1, 1, core.NewVec3(1, 1, 1))
	fb.AddSample(1, 1, core.NewVec3(1, 1, 1))

	assert.Equal(t, 3, fb.TotalSamples())
}

func TestFramebufferPixelsAreIndependent(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.AddSample(0, 0, core.NewVec3(1, 1, 1))

	assert.Equal(t, 1, fb.At(0, 0).SampleCount)
	assert.Equal(t, 0, fb.At(1, 0).SampleCount)
	assert.Equal(t, 0, fb.At(0, 1).SampleCount)
}
