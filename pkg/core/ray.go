package core

import "math"

// Epsilon is the default minimum hit distance, used to avoid
// self-intersection of rays spawned from a surface
const Epsilon = 1e-4

// Ray represents a ray with an origin, direction and a valid
// parametric interval [TMin, TMax). Immutable once constructed.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default [Epsilon, +Inf) interval
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      Epsilon,
		TMax:      math.Inf(1),
	}
}

// NewBoundedRay creates a ray with an explicit parametric interval
func NewBoundedRay(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t lies within the ray's valid interval
func (r Ray) Contains(t float64) bool {
	return t >= r.TMin && t < r.TMax
}

// Shortened returns a copy of the ray with its interval capped at tMax.
// Used by nearest-hit scans to discard anything behind the closest hit so far.
func (r Ray) Shortened(tMax float64) Ray {
	r.TMax = tMax
	return r
}
