package material

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// sampleLambertian draws a cosine-weighted direction in the hemisphere
// around the shading normal. BRDF is albedo/π, pdf is cos(θ)/π, so the
// hemispherical integral of f·cosθ equals the albedo (energy conserving).
func (m *Material) sampleLambertian(normal core.Vec3, s core.Sampler) (SampleResult, bool) {
	direction := core.SampleCosineHemisphere(normal, s.Get2D())

	cosTheta := direction.Dot(normal)
	if cosTheta <= 0 {
		// Degenerate sample at the horizon; absorb rather than divide by ~0
		return SampleResult{}, false
	}

	return SampleResult{
		Direction: direction,
		Value:     m.albedo.Multiply(1.0 / math.Pi),
		PDF:       cosTheta / math.Pi,
	}, true
}

func (m *Material) evaluateLambertian(outgoing, normal core.Vec3) core.Vec3 {
	if outgoing.Dot(normal) <= 0 {
		return core.Vec3{} // below the surface
	}
	return m.albedo.Multiply(1.0 / math.Pi)
}

func (m *Material) pdfLambertian(outgoing, normal core.Vec3) float64 {
	cosTheta := outgoing.Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}
