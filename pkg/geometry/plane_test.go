package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerna-render/lucerna/pkg/core"
)

func TestPlanePerpendicularHit(t *testing.T) {
	p := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.IdentityTransform(), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, ok := p.Hit(ray)
	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
	assert.InDelta(t, 1.0, hit.Normal.Y, 1e-9)
	assert.True(t, hit.FrontFace)
}

func TestPlaneParallelRayMisses(t *testing.T) {
	p := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.IdentityTransform(), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	_, ok := p.Hit(ray)
	assert.False(t, ok)
}

func TestPlaneBehindOriginMisses(t *testing.T) {
	p := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.IdentityTransform(), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	_, ok := p.Hit(ray)
	assert.False(t, ok)
}

func TestPlaneBackFace(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), core.IdentityTransform(), testMaterial())
	// Approaching from below, against the plane normal's back side
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	hit, ok := p.Hit(ray)
	require.True(t, ok)
	assert.False(t, hit.FrontFace)
	assert.InDelta(t, -1.0, hit.Normal.Y, 1e-9)
}

func TestPlaneNormalizesInput(t *testing.T) {
	// A non-unit normal is accepted and normalized
	p := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 5, 0), core.IdentityTransform(), testMaterial())
	hit, ok := p.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)))
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-9)
	assert.InDelta(t, 1.0, hit.T, 1e-9)
}
