package geometry

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// Plane is an infinite plane in object space, defined by a point on the
// plane and its normal. The u/v axes span the plane for surface
// parameterization.
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	uAxis  core.Vec3
	vAxis  core.Vec3
}

func newPlane(point, normal core.Vec3) Plane {
	n := normal.Normalize()

	// Any in-plane basis works for parameterization
	var ref core.Vec3
	if math.Abs(n.X) > 0.1 {
		ref = core.NewVec3(0, 1, 0)
	} else {
		ref = core.NewVec3(1, 0, 0)
	}
	u := ref.Cross(n).Normalize()
	v := n.Cross(u)

	return Plane{Point: point, Normal: n, uAxis: u, vAxis: v}
}

// hit solves the parametric ray/plane equation. Rays parallel to the
// plane (denominator ≈ 0) report no hit.
func (p Plane) hit(ray core.Ray) (localHit, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-9 {
		return localHit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !ray.Contains(t) {
		return localHit{}, false
	}

	offset := ray.At(t).Subtract(p.Point)
	return localHit{
		t:      t,
		normal: p.Normal,
		uv:     core.NewVec2(offset.Dot(p.uAxis), offset.Dot(p.vAxis)),
	}, true
}
