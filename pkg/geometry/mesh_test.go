package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerna-render/lucerna/pkg/core"
)

func TestNewMeshValidatesIndices(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
	}

	_, err := NewMesh(vertices, [][3]int{{0, 1, 2}})
	require.NoError(t, err)

	_, err = NewMesh(vertices, [][3]int{{0, 1, 3}})
	require.Error(t, err)

	_, err = NewMesh(vertices, [][3]int{{0, -1, 2}})
	require.Error(t, err)
}

func TestMeshTriangleCount(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0),
	}
	mesh, err := NewMesh(vertices, [][3]int{{0, 1, 2}, {1, 3, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.TriangleCount())
}

func TestMeshNearestTriangleWins(t *testing.T) {
	// Two parallel triangles stacked along -z; the closer one should be
	// reported regardless of face order
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2),
		core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5),
	}
	faces := [][3]int{
		{3, 4, 5}, // far triangle listed first
		{0, 1, 2},
	}
	mesh, err := NewMesh(vertices, faces)
	require.NoError(t, err)

	prim := NewMeshPrimitive(mesh, core.IdentityTransform(), testMaterial())
	hit, ok := prim.Hit(core.NewRay(core.NewVec3(0, -0.2, 0), core.NewVec3(0, 0, -1)))
	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
}

func TestMeshEmptyMisses(t *testing.T) {
	mesh, err := NewMesh(nil, nil)
	require.NoError(t, err)

	prim := NewMeshPrimitive(mesh, core.IdentityTransform(), testMaterial())
	_, ok := prim.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	assert.False(t, ok)
}
