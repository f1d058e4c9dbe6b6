package material

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
)

// sampleDielectric makes a Fresnel-weighted stochastic choice between
// reflection and refraction. The reflect probability is the Schlick
// reflectance and the refract probability is its complement, so the two
// always sum to 1; total internal reflection forces reflection. Clear
// dielectrics carry unit weight either way.
func (m *Material) sampleDielectric(incoming, normal core.Vec3, frontFace bool, s core.Sampler) (SampleResult, bool) {
	// Relative index of refraction depends on whether the ray enters
	// or exits the medium
	var refractionRatio float64
	if frontFace {
		refractionRatio = 1.0 / m.ior
	} else {
		refractionRatio = m.ior
	}

	unitDir := incoming.Normalize()
	cosTheta := math.Min(-unitDir.Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Snell's law has no solution past the critical angle
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || SchlickReflectance(cosTheta, refractionRatio) > s.Get1D() {
		direction = reflect(unitDir, normal)
	} else {
		direction = refract(unitDir, normal, refractionRatio)
	}

	return SampleResult{
		Direction: direction,
		Value:     core.NewVec3(1, 1, 1),
		PDF:       1,
		Specular:  true,
	}, true
}

// ReflectProbability returns the probability with which sampleDielectric
// reflects a ray arriving at the given angle cosine, honoring total
// internal reflection. Exposed for energy-conservation checks.
func (m *Material) ReflectProbability(cosTheta float64, frontFace bool) float64 {
	if m.kind != KindDielectric {
		return 0
	}
	refractionRatio := m.ior
	if frontFace {
		refractionRatio = 1.0 / m.ior
	}
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	if refractionRatio*sinTheta > 1.0 {
		return 1.0
	}
	return SchlickReflectance(cosTheta, refractionRatio)
}

// refract computes the refraction direction from Snell's law.
// uv must be unit length and point toward the surface.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// SchlickReflectance approximates the Fresnel reflectance at a
// dielectric interface
func SchlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
