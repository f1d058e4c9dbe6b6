package core

import "math"

// orthonormalBasis builds a right-handed orthonormal basis around w.
// w must be a unit vector.
func orthonormalBasis(w Vec3) (u, v Vec3) {
	// Pick any vector not parallel to w
	var nt Vec3
	if math.Abs(w.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	u = nt.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v
}

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around normal from a uniform sample in [0,1)².
// The corresponding pdf is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Malley's method: uniform point on the unit disk, projected up
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	tangent, bitangent := orthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// SamplePowerCosineLobe generates a direction distributed as
// cosⁿ(α)·(n+1)/(2π) around axis, where α is the angle from axis.
// Used for Phong specular lobe sampling.
func SamplePowerCosineLobe(axis Vec3, exponent float64, sample Vec2) Vec3 {
	cosAlpha := math.Pow(sample.X, 1.0/(exponent+1.0))
	sinAlpha := math.Sqrt(math.Max(0, 1.0-cosAlpha*cosAlpha))
	phi := 2.0 * math.Pi * sample.Y

	x := sinAlpha * math.Cos(phi)
	y := sinAlpha * math.Sin(phi)

	u, v := orthonormalBasis(axis)
	return u.Multiply(x).Add(v.Multiply(y)).Add(axis.Multiply(cosAlpha))
}

// PowerCosineLobePDF returns the pdf of SamplePowerCosineLobe for a
// direction at angle α from the lobe axis, zero below the lobe equator.
func PowerCosineLobePDF(axis, direction Vec3, exponent float64) float64 {
	cosAlpha := axis.Dot(direction)
	if cosAlpha <= 0 {
		return 0
	}
	return (exponent + 1.0) / (2.0 * math.Pi) * math.Pow(cosAlpha, exponent)
}
