package material

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// Modified Phong BRDF: f = albedo·(n+2)/(2π)·cosⁿ(α) where α is the
// angle between the outgoing direction and the mirror direction.
// Sampling draws from the matching cosⁿ lobe with pdf (n+1)/(2π)·cosⁿ(α).

func (m *Material) samplePhong(incoming, normal core.Vec3, s core.Sampler) (SampleResult, bool) {
	mirrorDir := reflect(incoming.Normalize(), normal)
	direction := core.SamplePowerCosineLobe(mirrorDir, m.exponent, s.Get2D())

	// The lobe can dip below the surface for grazing mirror directions;
	// those samples are absorbed
	if direction.Dot(normal) <= 0 {
		return SampleResult{}, false
	}

	pdf := core.PowerCosineLobePDF(mirrorDir, direction, m.exponent)
	if pdf <= 0 {
		return SampleResult{}, false
	}

	return SampleResult{
		Direction: direction,
		Value:     m.phongBRDF(mirrorDir, direction),
		PDF:       pdf,
	}, true
}

func (m *Material) evaluatePhong(incoming, outgoing, normal core.Vec3) core.Vec3 {
	if outgoing.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	mirrorDir := reflect(incoming.Normalize(), normal)
	if mirrorDir.Dot(outgoing) <= 0 {
		return core.Vec3{}
	}
	return m.phongBRDF(mirrorDir, outgoing)
}

func (m *Material) pdfPhong(incoming, outgoing, normal core.Vec3) float64 {
	if outgoing.Dot(normal) <= 0 {
		return 0
	}
	mirrorDir := reflect(incoming.Normalize(), normal)
	return core.PowerCosineLobePDF(mirrorDir, outgoing, m.exponent)
}

func (m *Material) phongBRDF(mirrorDir, outgoing core.Vec3) core.Vec3 {
	cosAlpha := mirrorDir.Dot(outgoing)
	if cosAlpha <= 0 {
		return core.Vec3{}
	}
	norm := (m.exponent + 2.0) / (2.0 * math.Pi)
	return m.albedo.Multiply(norm * math.Pow(cosAlpha, m.exponent))
}
