// Package scene aggregates the primitives, materials and camera of a
// render. A Scene is built once, then treated as read-only: rendering
// workers share it concurrently without locking.
package scene

import (
	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/geometry"
	"github.com/lucerna-render/lucerna/pkg/material"
)

// Scene owns the primitive list, the materials shared by those
// primitives, and the camera. Background is the radiance returned for
// rays that escape the scene (zero unless configured).
type Scene struct {
	Camera     *Camera
	Primitives []*geometry.Primitive
	Materials  []*material.Material
	Background core.Vec3
}

// NewScene creates an empty scene with the given camera
func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// AddMaterial registers a material with the scene and returns it.
// Materials are allocated once and shared by pointer across every
// primitive that uses them; they are never cloned.
func (s *Scene) AddMaterial(m *material.Material) *material.Material {
	s.Materials = append(s.Materials, m)
	return m
}

// AddPrimitive appends a primitive to the scene
func (s *Scene) AddPrimitive(p *geometry.Primitive) {
	s.Primitives = append(s.Primitives, p)
}

// GenerateRay produces the camera's primary ray for a pixel
func (s *Scene) GenerateRay(px, py int, jitter core.Vec2) core.Ray {
	return s.Camera.GenerateRay(px, py, jitter)
}

// Intersect returns the nearest intersection along the ray across all
// primitives, or false if nothing is hit. Linear scan; the ray interval
// shrinks as closer hits are found so the reported hit has the minimal
// positive t.
func (s *Scene) Intersect(ray core.Ray) (*geometry.HitRecord, bool) {
	var nearest *geometry.HitRecord

	for _, p := range s.Primitives {
		if hit, ok := p.Hit(ray); ok {
			ray = ray.Shortened(hit.T)
			nearest = hit
		}
	}

	return nearest, nearest != nil
}
