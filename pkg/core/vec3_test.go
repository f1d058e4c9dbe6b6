package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, 10, 18), a.MultiplyVec(b))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())
	assert.Equal(t, 32.0, a.Dot(b))
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
	assert.Equal(t, NewVec3(0, 0, -1), y.Cross(x))
	assert.True(t, x.Cross(x).IsZero())
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-12)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	// Zero vector stays zero rather than producing NaNs
	assert.True(t, Vec3{}.Normalize().IsZero())
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	assert.Equal(t, NewVec3(0, 0.5, 1), v)
}

func TestVec3MaxComponent(t *testing.T) {
	assert.Equal(t, 3.0, NewVec3(1, 3, 2).MaxComponent())
	assert.Equal(t, -1.0, NewVec3(-5, -1, -3).MaxComponent())
}

func TestVec3Luminance(t *testing.T) {
	assert.InDelta(t, 1.0, NewVec3(1, 1, 1).Luminance(), 1e-12)
	assert.InDelta(t, 0.587, NewVec3(0, 1, 0).Luminance(), 1e-12)
	assert.Equal(t, 0.0, Vec3{}.Luminance())
}

func TestVec3IsFinite(t *testing.T) {
	assert.True(t, NewVec3(1, 2, 3).IsFinite())
	assert.False(t, NewVec3(math.NaN(), 0, 0).IsFinite())
	assert.False(t, NewVec3(0, math.Inf(1), 0).IsFinite())
	assert.False(t, NewVec3(0, 0, math.Inf(-1)).IsFinite())
}
