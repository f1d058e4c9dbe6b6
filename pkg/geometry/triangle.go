package geometry

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// Triangle is a triangle in object space with counter-clockwise winding
type Triangle struct {
	V0, V1, V2 core.Vec3
}

// hit runs the Möller–Trumbore intersection. Barycentric acceptance is
// half-open (u >= 0, v >= 0, u+v < 1) so a ray through an edge shared
// by two adjacent triangles reports exactly one of them. Rays parallel
// to the triangle plane and zero-area triangles report no hit.
func (tri Triangle) hit(ray core.Ray) (localHit, bool) {
	e1 := tri.V1.Subtract(tri.V0)
	e2 := tri.V2.Subtract(tri.V0)

	h := ray.Direction.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < 1e-9 {
		return localHit{}, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(tri.V0)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return localHit{}, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v >= 1 {
		return localHit{}, false
	}

	t := e2.Dot(q) * invDet
	if !ray.Contains(t) {
		return localHit{}, false
	}

	return localHit{
		t:      t,
		normal: e1.Cross(e2).Normalize(),
		uv:     core.NewVec2(u, v),
	}, true
}
