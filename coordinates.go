package pinwheel

import (
	"math"
)

// Spherical is a point in spherical coordinates. Theta is the polar angle
// measured from +Z and Phi the azimuth measured from +X towards +Y, both in
// radians.
type Spherical struct {
	R     float64
	Theta float64
	Phi   float64
}

func ToCartesian(s Spherical) Vector {
	sinTheta, cosTheta := math.Sincos(s.Theta)
	sinPhi, cosPhi := math.Sincos(s.Phi)
	return Vector{
		s.R * sinTheta * cosPhi,
		s.R * sinTheta * sinPhi,
		s.R * cosTheta,
	}
}

// ToSpherical is the inverse of ToCartesian. The azimuth is not unique on
// the Z axis; the origin yields the zero Spherical.
func ToSpherical(v Vector) Spherical {
	r := math.Sqrt(pow2(v[0]) + pow2(v[1]) + pow2(v[2]))
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		R:     r,
		Theta: math.Acos(clamp(v[2]/r, -1, 1)),
		Phi:   math.Atan2(v[1], v[0]),
	}
}
