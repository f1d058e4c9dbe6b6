package material

import "github.com/lucerna-render/lucerna/pkg/core"

// sampleMirror reflects deterministically. The pdf is a Dirac delta,
// modeled as sampling the reflection with probability 1; the value
// carries the full path weight and the integrator skips cos/pdf.
func (m *Material) sampleMirror(incoming, normal core.Vec3) (SampleResult, bool) {
	direction := reflect(incoming.Normalize(), normal)
	if direction.Dot(normal) <= 0 {
		// Numerical edge: reflection of a grazing ray lands below the
		// surface, absorb it
		return SampleResult{}, false
	}

	return SampleResult{
		Direction: direction,
		Value:     m.albedo,
		PDF:       1,
		Specular:  true,
	}, true
}
