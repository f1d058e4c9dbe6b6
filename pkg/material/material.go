// Package material implements the reflectance models of the renderer.
// The variant set is closed and small, so materials are a single tagged
// struct dispatched with a switch per operation rather than an open
// interface. Materials are immutable and shared by pointer across every
// primitive that uses them.
package material

import (
	"github.com/lucerna-render/lucerna/pkg/core"
)

// Kind identifies a material variant
type Kind int

const (
	KindLambertian Kind = iota // cosine-weighted diffuse
	KindPhong                  // glossy specular lobe
	KindMirror                 // ideal reflector (delta)
	KindDielectric             // ideal dielectric (delta)
	KindEmissive               // pure emitter, absorbs incoming light
)

// String returns the scene-file name of the kind
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindPhong:
		return "phong"
	case KindMirror:
		return "mirror"
	case KindDielectric:
		return "dielectric"
	case KindEmissive:
		return "emissive"
	}
	return "unknown"
}

// Material is a closed tagged variant over the supported reflectance
// models. Only the fields relevant to the kind are meaningful.
type Material struct {
	kind     Kind
	albedo   core.Vec3 // lambertian, phong, mirror
	exponent float64   // phong lobe concentration
	ior      float64   // dielectric index of refraction
	emission core.Vec3 // emissive radiance
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{kind: KindLambertian, albedo: albedo}
}

// NewPhong creates a glossy material with a specular lobe around the
// mirror direction; higher exponents concentrate the lobe
func NewPhong(albedo core.Vec3, exponent float64) *Material {
	return &Material{kind: KindPhong, albedo: albedo, exponent: exponent}
}

// NewMirror creates an ideal mirror with the given tint
func NewMirror(albedo core.Vec3) *Material {
	return &Material{kind: KindMirror, albedo: albedo}
}

// NewDielectric creates an ideal dielectric (e.g. glass at ior 1.5)
func NewDielectric(ior float64) *Material {
	return &Material{kind: KindDielectric, ior: ior}
}

// NewEmissive creates a light-emitting material. Emissive surfaces do
// not scatter; they terminate paths with their radiance.
func NewEmissive(emission core.Vec3) *Material {
	return &Material{kind: KindEmissive, emission: emission}
}

// Kind returns the material variant tag
func (m *Material) Kind() Kind { return m.kind }

// Albedo returns the base reflectance color
func (m *Material) Albedo() core.Vec3 { return m.albedo }

// IsEmissive reports whether the material emits light
func (m *Material) IsEmissive() bool { return m.kind == KindEmissive }

// IsSpecular reports whether the material's BSDF is a delta function
func (m *Material) IsSpecular() bool {
	return m.kind == KindMirror || m.kind == KindDielectric
}

// EmittedRadiance returns the radiance emitted by the material,
// zero for non-emissive kinds
func (m *Material) EmittedRadiance() core.Vec3 {
	if m.kind == KindEmissive {
		return m.emission
	}
	return core.Vec3{}
}

// SampleResult is an importance-sampled outgoing direction together
// with its BSDF value and probability density.
type SampleResult struct {
	Direction core.Vec3 // unit outgoing direction
	Value     core.Vec3 // BSDF value f; for delta materials the full path weight
	PDF       float64   // density of Direction; 1 for delta materials
	Specular  bool      // delta BSDF: skip the cos/pdf weighting
}

// Sample importance-samples an outgoing direction for light arriving
// along incoming at a surface with the given shading normal. The
// normal faces against the incoming ray; frontFace tells dielectrics
// whether the ray enters or exits the medium. Returns false when the
// material absorbs the path (emissive surfaces, or glossy samples
// falling below the horizon).
func (m *Material) Sample(incoming, normal core.Vec3, frontFace bool, s core.Sampler) (SampleResult, bool) {
	switch m.kind {
	case KindLambertian:
		return m.sampleLambertian(normal, s)
	case KindPhong:
		return m.samplePhong(incoming, normal, s)
	case KindMirror:
		return m.sampleMirror(incoming, normal)
	case KindDielectric:
		return m.sampleDielectric(incoming, normal, frontFace, s)
	case KindEmissive:
		return SampleResult{}, false
	}
	return SampleResult{}, false
}

// Evaluate returns the BSDF value for a given direction pair. Delta
// materials (mirror, dielectric) evaluate to zero against arbitrary
// directions; their contribution only exists through Sample.
func (m *Material) Evaluate(incoming, outgoing, normal core.Vec3) core.Vec3 {
	switch m.kind {
	case KindLambertian:
		return m.evaluateLambertian(outgoing, normal)
	case KindPhong:
		return m.evaluatePhong(incoming, outgoing, normal)
	}
	return core.Vec3{}
}

// PDF returns the probability density with which Sample would produce
// outgoing for the given incoming direction. Zero for delta materials.
func (m *Material) PDF(incoming, outgoing, normal core.Vec3) float64 {
	switch m.kind {
	case KindLambertian:
		return m.pdfLambertian(outgoing, normal)
	case KindPhong:
		return m.pdfPhong(incoming, outgoing, normal)
	}
	return 0
}

// reflect returns v mirrored about a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
