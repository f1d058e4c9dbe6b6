package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/geometry"
	"github.com/lucerna-render/lucerna/pkg/material"
	"github.com/lucerna-render/lucerna/pkg/scene"
)

func renderScene(t *testing.T, sc *scene.Scene, settings RenderSettings) *Framebuffer {
	t.Helper()
	r, err := NewRenderer(sc, settings, nil)
	require.NoError(t, err)
	fb, err := r.Render(context.Background())
	require.NoError(t, err)
	return fb
}

func TestEmptySceneRendersBackground(t *testing.T) {
	cam := scene.NewCamera(scene.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
		Width:    8,
		Height:   8,
	})
	sc := scene.NewScene(cam)

	fb := renderScene(t, sc, testRenderSettings(8, 8))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.True(t, fb.Mean(x, y).IsZero(), "pixel (%d,%d) should be background", x, y)
		}
	}
}

func TestMirrorSphereReflectsPlaneColor(t *testing.T) {
	// An ideal mirror sphere in front of a blue plane: the pixels
	// covering the sphere must show the plane's color, not a color of
	// the sphere's own
	const size = 16
	sc := scene.NewMirrorTestScene(size, size)

	settings := DefaultSettings(size, size)
	settings.SamplesPerPixel = 64
	settings.TileSize = 8
	settings.Seed = 3

	fb := renderScene(t, sc, settings)

	// The sphere fills the image center
	center := fb.Mean(size/2, size/2)
	require.Greater(t, center.Z, 0.0, "mirror reflection should carry light")
	// The plane is strongly blue, so the reflection is too
	assert.Greater(t, center.Z, center.X*2)
	assert.Greater(t, center.Z, center.Y*2)
}

func TestLitSphereBrightnessProfile(t *testing.T) {
	// A white diffuse sphere lit from directly above: pixels near the
	// top of the sphere face the light and must come out brighter than
	// pixels near the bottom, and nothing may exceed the emission.
	const size = 8
	cam := scene.NewCamera(scene.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 4),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     35,
		Width:    size,
		Height:   size,
	})
	sc := scene.NewScene(cam)
	white := sc.AddMaterial(material.NewLambertian(core.NewVec3(1, 1, 1)))
	light := sc.AddMaterial(material.NewEmissive(core.NewVec3(4, 4, 4)))

	identity := core.IdentityTransform()
	sc.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, identity, white))
	sc.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 3, 0), 1, identity, light))

	settings := DefaultSettings(size, size)
	settings.SamplesPerPixel = 256
	settings.TileSize = 4
	settings.MaxDepth = 6
	settings.Seed = 11

	fb := renderScene(t, sc, settings)

	col := size / 2
	top := fb.Mean(col, 1).Luminance()
	middle := fb.Mean(col, size/2).Luminance()
	bottom := fb.Mean(col, size-2).Luminance()

	// Brightness falls off with distance from the lit hemisphere
	assert.Greater(t, top, middle)
	assert.Greater(t, middle, bottom)

	// Radiance never exceeds the light's emission
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			require.LessOrEqual(t, fb.Mean(x, y).MaxComponent(), 4.0+1e-9, "pixel (%d,%d)", x, y)
		}
	}
}
