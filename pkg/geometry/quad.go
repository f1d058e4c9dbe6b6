package geometry

import "github.com/lucerna-render/lucerna/pkg/core"

// Quad is a quadrilateral in object space given by four vertices in
// winding order. It is intersected as the two triangles sharing the
// V0–V2 diagonal; the first triangle owns the diagonal, so no ray is
// counted twice and none slips through the seam.
type Quad struct {
	V0, V1, V2, V3 core.Vec3
}

func (q Quad) hit(ray core.Ray) (localHit, bool) {
	if lh, ok := (Triangle{V0: q.V0, V1: q.V1, V2: q.V2}).hit(ray); ok {
		return lh, true
	}
	return Triangle{V0: q.V0, V1: q.V2, V2: q.V3}.hit(ray)
}
