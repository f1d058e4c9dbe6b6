package geometry

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// Sphere is a sphere in object space
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// hit solves the quadratic |o + t·d - c|² = r² for the nearest root in
// the ray's interval
func (s Sphere) hit(ray core.Ray) (localHit, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return localHit{}, false // degenerate zero-length direction
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return localHit{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if !ray.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ray.Contains(root) {
			return localHit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return localHit{
		t:      root,
		normal: normal,
		uv:     sphereUV(normal),
	}, true
}

// sphereUV maps a unit outward normal to spherical coordinates in [0,1)².
// The Acos argument is clamped so rounding in the normal cannot produce NaN.
func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
