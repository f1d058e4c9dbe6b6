// Package integrator implements the light transport estimator: a
// classical unidirectional Monte Carlo path tracer with pure BSDF
// sampling of emissive surfaces (no next-event estimation).
package integrator

import (
	"math"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/scene"
)

// PathTracer estimates radiance by repeatedly sampling BSDFs and
// tracing continuation rays. Paths terminate on escape, on emissive
// hits, by Russian roulette past RRStartDepth, and unconditionally at
// MaxDepth.
type PathTracer struct {
	MaxDepth     int // hard bound on path length
	RRStartDepth int // first bounce at which Russian roulette applies
}

// NewPathTracer creates a path tracing integrator
func NewPathTracer(maxDepth, rrStartDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth, RRStartDepth: rrStartDepth}
}

// Li returns one radiance sample for the given camera ray. The path is
// an explicit bounded loop: termination is a loop condition, not a
// recursion depth. Numerical degeneracies (pdf <= 0, non-finite BSDF
// values) end the path with zero additional contribution and are never
// surfaced to the caller.
func (pt *PathTracer) Li(ray core.Ray, sc *scene.Scene, s core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, ok := sc.Intersect(ray)
		if !ok {
			// Escaped: pick up the background radiance and stop
			radiance = radiance.Add(throughput.MultiplyVec(sc.Background))
			break
		}

		if hit.Material.IsEmissive() {
			radiance = radiance.Add(throughput.MultiplyVec(hit.Material.EmittedRadiance()))
			break
		}

		// Russian roulette keeps the estimator unbiased while bounding
		// expected path length: survive with probability p, divide
		// throughput by p on survival
		if depth >= pt.RRStartDepth {
			p := math.Min(1.0, throughput.MaxComponent())
			if p <= 0 || s.Get1D() > p {
				break
			}
			throughput = throughput.Multiply(1.0 / p)
		}

		sample, ok := hit.Material.Sample(ray.Direction, hit.Normal, hit.FrontFace, s)
		if !ok || sample.PDF <= 0 || !sample.Value.IsFinite() {
			break // absorbed or degenerate sample
		}

		if sample.Specular {
			// Delta BSDF: the sample carries the full weight
			throughput = throughput.MultiplyVec(sample.Value)
		} else {
			cosTheta := math.Abs(sample.Direction.Dot(hit.Normal))
			throughput = throughput.MultiplyVec(sample.Value).Multiply(cosTheta / sample.PDF)
		}

		if !throughput.IsFinite() || throughput.IsZero() {
			break
		}

		ray = core.NewRay(hit.Point, sample.Direction)
	}

	// A NaN must never reach the framebuffer
	if !radiance.IsFinite() {
		return core.Vec3{}
	}
	return radiance
}
