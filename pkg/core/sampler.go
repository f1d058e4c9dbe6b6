package core

// Sampler provides random values for individual sampling decisions.
// Implementations live in pkg/sampler; this narrow interface lets
// materials and the integrator draw values without caring where the
// stream comes from.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}
