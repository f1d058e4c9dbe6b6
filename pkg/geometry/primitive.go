// Package geometry implements ray intersection for the renderer's
// primitive variants. The variant set is closed (sphere, plane,
// triangle, quadrilateral and triangle mesh), so a primitive is a
// tagged struct dispatched with a switch, not an open interface. Every
// primitive carries an affine object-to-world transform: incoming rays
// are taken to object space with the inverse, and normals come back
// through the inverse-transpose so they survive non-uniform scale.
package geometry

import (
	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/material"
)

// Kind identifies a primitive variant
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindTriangle
	KindQuad
	KindMesh
)

// Primitive is a closed tagged variant over the supported shapes,
// placed in the world by a transform and shaded by a shared material.
type Primitive struct {
	kind     Kind
	sphere   Sphere
	plane    Plane
	triangle Triangle
	quad     Quad
	mesh     *Mesh

	transform    core.Transform
	hasTransform bool // false for identity, skips the matrix work
	material     *material.Material
}

// NewSphere creates a sphere primitive
func NewSphere(center core.Vec3, radius float64, t core.Transform, m *material.Material) *Primitive {
	return newPrimitive(KindSphere, Primitive{sphere: Sphere{Center: center, Radius: radius}}, t, m)
}

// NewPlane creates an infinite plane primitive through point with the
// given normal
func NewPlane(point, normal core.Vec3, t core.Transform, m *material.Material) *Primitive {
	return newPrimitive(KindPlane, Primitive{plane: newPlane(point, normal)}, t, m)
}

// NewTriangle creates a triangle primitive
func NewTriangle(v0, v1, v2 core.Vec3, t core.Transform, m *material.Material) *Primitive {
	return newPrimitive(KindTriangle, Primitive{triangle: Triangle{V0: v0, V1: v1, V2: v2}}, t, m)
}

// NewQuad creates a quadrilateral primitive from four vertices in
// winding order
func NewQuad(v0, v1, v2, v3 core.Vec3, t core.Transform, m *material.Material) *Primitive {
	return newPrimitive(KindQuad, Primitive{quad: Quad{V0: v0, V1: v1, V2: v2, V3: v3}}, t, m)
}

// NewMeshPrimitive creates a primitive from a triangle mesh. All
// triangles share the primitive's transform and material.
func NewMeshPrimitive(mesh *Mesh, t core.Transform, m *material.Material) *Primitive {
	return newPrimitive(KindMesh, Primitive{mesh: mesh}, t, m)
}

func newPrimitive(kind Kind, p Primitive, t core.Transform, m *material.Material) *Primitive {
	p.kind = kind
	p.transform = t
	p.hasTransform = !t.IsIdentity()
	p.material = m
	return &p
}

// Kind returns the primitive variant tag
func (p *Primitive) Kind() Kind { return p.kind }

// Material returns the primitive's shared material
func (p *Primitive) Material() *material.Material { return p.material }

// Hit tests the ray against the primitive within the ray's parametric
// interval. Returns the world-space hit record for the nearest
// intersection, or false if there is none. Degenerate geometry (zero
// direction, parallel plane, zero-area triangle) reports no hit.
func (p *Primitive) Hit(ray core.Ray) (*HitRecord, bool) {
	objRay := ray
	if p.hasTransform {
		// Direction is deliberately not renormalized so object-space t
		// equals world-space t
		objRay = p.transform.InvRay(ray)
	}

	var lh localHit
	var ok bool
	switch p.kind {
	case KindSphere:
		lh, ok = p.sphere.hit(objRay)
	case KindPlane:
		lh, ok = p.plane.hit(objRay)
	case KindTriangle:
		lh, ok = p.triangle.hit(objRay)
	case KindQuad:
		lh, ok = p.quad.hit(objRay)
	case KindMesh:
		lh, ok = p.mesh.hit(objRay)
	}
	if !ok {
		return nil, false
	}

	hit := &HitRecord{
		T:        lh.t,
		Point:    ray.At(lh.t),
		UV:       lh.uv,
		Material: p.material,
	}

	outward := lh.normal
	if p.hasTransform {
		outward = p.transform.Normal(outward)
	}
	hit.setFaceNormal(ray, outward)

	return hit, true
}
