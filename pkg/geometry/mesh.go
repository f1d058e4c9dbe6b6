package geometry

import (
	"fmt"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// Mesh is an indexed triangle mesh in object space. All triangles share
// the owning primitive's transform and material. Intersection is a
// linear scan over the triangles; no acceleration structure.
type Mesh struct {
	Vertices []core.Vec3
	Faces    [][3]int
}

// NewMesh creates a mesh and validates its face indices
func NewMesh(vertices []core.Vec3, faces [][3]int) (*Mesh, error) {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("mesh face %d references vertex %d, have %d vertices", i, idx, len(vertices))
			}
		}
	}
	return &Mesh{Vertices: vertices, Faces: faces}, nil
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// hit returns the nearest triangle hit, shrinking the ray interval as
// closer hits are found
func (m *Mesh) hit(ray core.Ray) (localHit, bool) {
	var nearest localHit
	found := false

	for _, f := range m.Faces {
		tri := Triangle{
			V0: m.Vertices[f[0]],
			V1: m.Vertices[f[1]],
			V2: m.Vertices[f[2]],
		}
		if lh, ok := tri.hit(ray); ok {
			ray = ray.Shortened(lh.t)
			nearest = lh
			found = true
		}
	}

	return nearest, found
}
