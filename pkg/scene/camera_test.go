package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerna-render/lucerna/pkg/core"
)

func testCamera(width, height int) *Camera {
	return NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
		Width:    width,
		Height:   height,
	})
}

func TestCameraCenterRay(t *testing.T) {
	c := testCamera(4, 4)

	// Zero jitter at the center pixel goes straight down the view axis
	ray := c.GenerateRay(2, 2, core.Vec2{})
	assert.InDelta(t, 0.0, ray.Direction.X, 1e-9)
	assert.InDelta(t, 0.0, ray.Direction.Y, 1e-9)
	assert.InDelta(t, -1.0, ray.Direction.Z, 1e-9)
	assert.Equal(t, core.Vec3{}, ray.Origin)
}

func TestCameraRaysAreUnitLength(t *testing.T) {
	c := testCamera(8, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			ray := c.GenerateRay(x, y, core.NewVec2(0.5, 0.5))
			assert.InDelta(t, 1.0, ray.Direction.Length(), 1e-12)
		}
	}
}

func TestCameraOrientation(t *testing.T) {
	c := testCamera(4, 4)

	// Pixel (0,0) is the top-left corner: up and to the left
	topLeft := c.GenerateRay(0, 0, core.Vec2{})
	assert.Less(t, topLeft.Direction.X, 0.0)
	assert.Greater(t, topLeft.Direction.Y, 0.0)

	bottomRight := c.GenerateRay(3, 3, core.NewVec2(1, 1))
	assert.Greater(t, bottomRight.Direction.X, 0.0)
	assert.Less(t, bottomRight.Direction.Y, 0.0)
}

func TestCameraJitterStaysInsidePixel(t *testing.T) {
	c := testCamera(16, 16)

	a := c.GenerateRay(5, 5, core.NewVec2(0.1, 0.1))
	b := c.GenerateRay(5, 5, core.NewVec2(0.9, 0.9))
	next := c.GenerateRay(6, 5, core.NewVec2(0.1, 0.1))

	// Jitter moves the ray within the pixel but less than a full pixel
	require.NotEqual(t, a.Direction, b.Direction)
	assert.Greater(t, next.Direction.X, b.Direction.X)
}

func TestCameraDimensions(t *testing.T) {
	c := testCamera(320, 240)
	assert.Equal(t, 320, c.Width())
	assert.Equal(t, 240, c.Height())
}
