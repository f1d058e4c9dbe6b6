package scene

import (
	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/geometry"
	"github.com/lucerna-render/lucerna/pkg/material"
)

// NewDefaultScene builds a small demo scene: a diffuse sphere resting
// on a gray floor under a ceiling light.
func NewDefaultScene(width, height int) *Scene {
	camera := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 1),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
		Width:    width,
		Height:   height,
	})
	s := NewScene(camera)

	gray := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	orange := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.6, 0.2)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(2, 2, 2)))

	identity := core.IdentityTransform()
	s.AddPrimitive(geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), identity, gray))
	s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, -0.5), 0.5, identity, orange))
	s.AddPrimitive(geometry.NewPlane(core.NewVec3(0, 0.995, 0), core.NewVec3(0, -1, 0), identity, light))

	return s
}

// NewCornellScene builds a Cornell-style box: white walls, red and
// green sides, a quad area light in the ceiling, one mirror and one
// glass sphere.
func NewCornellScene(width, height int) *Scene {
	camera := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 1, 3.4),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
		Width:    width,
		Height:   height,
	})
	s := NewScene(camera)

	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(15, 15, 15)))
	mirror := s.AddMaterial(material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	identity := core.IdentityTransform()

	// Box interior, 2 units wide, normals facing inward
	s.AddPrimitive(geometry.NewQuad( // floor
		core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1), core.NewVec3(1, 0, -1), core.NewVec3(-1, 0, -1),
		identity, white))
	s.AddPrimitive(geometry.NewQuad( // ceiling
		core.NewVec3(-1, 2, -1), core.NewVec3(1, 2, -1), core.NewVec3(1, 2, 1), core.NewVec3(-1, 2, 1),
		identity, white))
	s.AddPrimitive(geometry.NewQuad( // back wall
		core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(1, 2, -1), core.NewVec3(-1, 2, -1),
		identity, white))
	s.AddPrimitive(geometry.NewQuad( // left wall
		core.NewVec3(-1, 0, 1), core.NewVec3(-1, 0, -1), core.NewVec3(-1, 2, -1), core.NewVec3(-1, 2, 1),
		identity, red))
	s.AddPrimitive(geometry.NewQuad( // right wall
		core.NewVec3(1, 0, -1), core.NewVec3(1, 0, 1), core.NewVec3(1, 2, 1), core.NewVec3(1, 2, -1),
		identity, green))

	// Area light slightly below the ceiling
	s.AddPrimitive(geometry.NewQuad(
		core.NewVec3(-0.4, 1.995, -0.4), core.NewVec3(0.4, 1.995, -0.4),
		core.NewVec3(0.4, 1.995, 0.4), core.NewVec3(-0.4, 1.995, 0.4),
		identity, light))

	s.AddPrimitive(geometry.NewSphere(core.NewVec3(-0.45, 0.4, -0.4), 0.4, identity, mirror))
	s.AddPrimitive(geometry.NewSphere(core.NewVec3(0.45, 0.4, 0.2), 0.4, identity, glass))

	return s
}

// NewMirrorTestScene builds the delta-BSDF verification scene: an ideal
// mirror sphere in front of a single colored plane, lit from above. The
// mirror pixels must reproduce the plane's color, not the sphere's.
func NewMirrorTestScene(width, height int) *Scene {
	camera := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 2),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
		Width:    width,
		Height:   height,
	})
	s := NewScene(camera)

	blue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.9)))
	mirror := s.AddMaterial(material.NewMirror(core.NewVec3(1, 1, 1)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(4, 4, 4)))

	identity := core.IdentityTransform()
	s.AddPrimitive(geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), identity, blue))
	s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.6, identity, mirror))
	s.AddPrimitive(geometry.NewPlane(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0), identity, light))

	return s
}
