package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine object-to-world transform together with its
// cached inverse and the inverse-transpose of its linear part. Normals
// must be transformed by the inverse-transpose to stay perpendicular
// under non-uniform scale.
type Transform struct {
	mat       mgl64.Mat4
	inv       mgl64.Mat4
	normalMat mgl64.Mat3 // inverse-transpose of the upper-left 3x3
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	return Transform{
		mat:       mgl64.Ident4(),
		inv:       mgl64.Ident4(),
		normalMat: mgl64.Ident3(),
	}
}

// NewTransform creates a Transform from a 4x4 matrix.
// Returns an error if the matrix is not invertible.
func NewTransform(m mgl64.Mat4) (Transform, error) {
	if m.Det() == 0 {
		return Transform{}, fmt.Errorf("transform matrix is singular, cannot invert")
	}
	inv := m.Inv()
	return Transform{
		mat:       m,
		inv:       inv,
		normalMat: inv.Mat3().Transpose(),
	}, nil
}

// Translate returns a pure translation transform
func Translate(x, y, z float64) Transform {
	t, _ := NewTransform(mgl64.Translate3D(x, y, z))
	return t
}

// Scale returns a (possibly non-uniform) scale transform.
// Panics on zero scale factors; callers validate scene input first.
func Scale(x, y, z float64) Transform {
	t, err := NewTransform(mgl64.Scale3D(x, y, z))
	if err != nil {
		panic(err)
	}
	return t
}

// RotateX returns a rotation about the X axis by angle radians
func RotateX(angle float64) Transform {
	t, _ := NewTransform(mgl64.HomogRotate3DX(angle))
	return t
}

// RotateY returns a rotation about the Y axis by angle radians
func RotateY(angle float64) Transform {
	t, _ := NewTransform(mgl64.HomogRotate3DY(angle))
	return t
}

// RotateZ returns a rotation about the Z axis by angle radians
func RotateZ(angle float64) Transform {
	t, _ := NewTransform(mgl64.HomogRotate3DZ(angle))
	return t
}

// Compose returns the transform that applies other first, then t
func (t Transform) Compose(other Transform) Transform {
	out, _ := NewTransform(t.mat.Mul4(other.mat))
	return out
}

// Matrix returns the underlying 4x4 matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.mat
}

// Point transforms a point from object space to world space
func (t Transform) Point(p Vec3) Vec3 {
	v := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// Direction transforms a direction from object space to world space
// (no translation component)
func (t Transform) Direction(d Vec3) Vec3 {
	v := t.mat.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// Normal transforms a surface normal from object space to world space
// using the inverse-transpose of the linear part, renormalized
func (t Transform) Normal(n Vec3) Vec3 {
	v := t.normalMat.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return Vec3{v[0], v[1], v[2]}.Normalize()
}

// InvPoint transforms a point from world space to object space
func (t Transform) InvPoint(p Vec3) Vec3 {
	v := t.inv.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// InvDirection transforms a direction from world space to object space
func (t Transform) InvDirection(d Vec3) Vec3 {
	v := t.inv.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// InvRay transforms a ray into object space. The direction is not
// renormalized so that the parametric t of an object-space hit is also
// the world-space t.
func (t Transform) InvRay(r Ray) Ray {
	return Ray{
		Origin:    t.InvPoint(r.Origin),
		Direction: t.InvDirection(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}

// IsIdentity reports whether the transform is the identity
func (t Transform) IsIdentity() bool {
	return t.mat == mgl64.Ident4()
}
