package geometry

import (
	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/material"
)

// HitRecord contains information about a ray-primitive intersection.
// Point and Normal are in world space; the normal is oriented to face
// the incoming ray.
type HitRecord struct {
	T         float64            // parameter t along the ray
	Point     core.Vec3          // point of intersection
	Normal    core.Vec3          // shading normal, faces against the ray
	FrontFace bool               // whether the ray hit the front face
	UV        core.Vec2          // surface parameterization
	Material  *material.Material // material of the hit primitive
}

// setFaceNormal orients the normal against the ray and records which
// face was hit
func (h *HitRecord) setFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// localHit is an object-space intersection before the transform back to
// world space
type localHit struct {
	t      float64
	normal core.Vec3 // object-space outward normal
	uv     core.Vec2
}
