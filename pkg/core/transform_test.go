package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3InDelta(t *testing.T, expected, actual Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta)
	assert.InDelta(t, expected.Y, actual.Y, delta)
	assert.InDelta(t, expected.Z, actual.Z, delta)
}

func TestTransformIdentity(t *testing.T) {
	id := IdentityTransform()
	assert.True(t, id.IsIdentity())

	p := NewVec3(1, 2, 3)
	assert.Equal(t, p, id.Point(p))
	assert.Equal(t, p, id.Direction(p))
}

func TestTransformSingularMatrix(t *testing.T) {
	_, err := NewTransform(mgl64.Mat4{}) // all zeros
	require.Error(t, err)
}

func TestTransformTranslate(t *testing.T) {
	tr := Translate(1, 2, 3)

	assertVec3InDelta(t, NewVec3(1, 2, 3), tr.Point(Vec3{}), 1e-12)
	// Directions ignore the translation component
	assertVec3InDelta(t, NewVec3(0, 0, -1), tr.Direction(NewVec3(0, 0, -1)), 1e-12)
	// Inverse round trip
	assertVec3InDelta(t, NewVec3(5, 5, 5), tr.InvPoint(tr.Point(NewVec3(5, 5, 5))), 1e-12)
}

func TestTransformRotate(t *testing.T) {
	tr := RotateY(math.Pi / 2)
	assertVec3InDelta(t, NewVec3(0, 0, -1), tr.Direction(NewVec3(1, 0, 0)), 1e-12)
}

func TestTransformNormalUnderNonUniformScale(t *testing.T) {
	// Scale a sphere into an ellipsoid: the naive transformed normal is
	// no longer perpendicular, the inverse-transpose one is. For the
	// surface point on the equator the outward normal stays along X.
	tr := Scale(2, 1, 1)

	n := tr.Normal(NewVec3(1, 1, 0).Normalize())
	// Tangent to the stretched surface at that point
	objTangent := NewVec3(-1, 1, 0)
	tangent := tr.Direction(objTangent)
	assert.InDelta(t, 0, n.Dot(tangent), 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestTransformInvRayPreservesT(t *testing.T) {
	tr := Translate(0, 0, -5).Compose(Scale(2, 2, 2))

	worldRay := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	objRay := tr.InvRay(worldRay)

	// The inverse-transformed direction is not renormalized, so a point
	// at parameter t on the object ray maps back to the same t on the
	// world ray
	const tHit = 3.0
	objPoint := objRay.At(tHit)
	assertVec3InDelta(t, worldRay.At(tHit), tr.Point(objPoint), 1e-12)

	assert.Equal(t, worldRay.TMin, objRay.TMin)
	assert.Equal(t, worldRay.TMax, objRay.TMax)
}

func TestTransformCompose(t *testing.T) {
	// Compose applies the right operand first
	tr := Translate(10, 0, 0).Compose(Scale(2, 2, 2))
	assertVec3InDelta(t, NewVec3(12, 0, 0), tr.Point(NewVec3(1, 0, 0)), 1e-12)
}
