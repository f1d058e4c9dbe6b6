package scene

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// CameraConfig holds the perspective projection parameters
type CameraConfig struct {
	LookFrom core.Vec3 // camera position
	LookAt   core.Vec3 // point the camera faces
	Up       core.Vec3 // world up, tilts the camera roll
	VFov     float64   // vertical field of view in degrees
	Width    int       // image resolution in pixels
	Height   int
}

// Camera generates primary rays for pixel coordinates using a
// perspective projection
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width, height   int
}

// NewCamera creates a perspective camera from its configuration
func NewCamera(cfg CameraConfig) *Camera {
	aspect := float64(cfg.Width) / float64(cfg.Height)
	theta := cfg.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := aspect * halfHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
		width:           cfg.Width,
		height:          cfg.Height,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GenerateRay produces the primary ray for pixel (px, py) with a
// sub-pixel jitter in [0,1)². Pixel (0,0) is the top-left corner.
func (c *Camera) GenerateRay(px, py int, jitter core.Vec2) core.Ray {
	s := (float64(px) + jitter.X) / float64(c.width)
	t := 1.0 - (float64(py)+jitter.Y)/float64(c.height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction)
}
