package pinwheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphericalRoundTrip(t *testing.T) {
	a := assert.New(t)

	for _, r := range []float64{0.5, 1, 28, 1000} {
		for theta := 0.1; theta < math.Pi; theta += 0.37 {
			for phi := -math.Pi + 0.05; phi < math.Pi; phi += 0.41 {
				s := ToSpherical(ToCartesian(Spherical{r, theta, phi}))
				a.InDelta(r, s.R, 1e-9)
				a.InDelta(theta, s.Theta, 1e-9)
				a.InDelta(phi, s.Phi, 1e-9)
			}
		}
	}
}

func TestCartesianRoundTrip(t *testing.T) {
	for _, v := range []Vector{{1, 2, 3}, {-4, 0.5, -2}, {0, -3, 1}} {
		assertVector(t, v, ToCartesian(ToSpherical(v)))
	}
}

func TestToCartesianConvention(t *testing.T) {
	assertVector(t, Vector{0, 0, 2}, ToCartesian(Spherical{2, 0, 1}))
	assertVector(t, Vector{2, 0, 0}, ToCartesian(Spherical{2, math.Pi / 2, 0}))
	assertVector(t, Vector{0, 2, 0}, ToCartesian(Spherical{2, math.Pi / 2, math.Pi / 2}))
}

func TestToSphericalDegenerate(t *testing.T) {
	a := assert.New(t)

	a.Equal(Spherical{}, ToSpherical(Zeroes()))

	pole := ToSpherical(Vector{0, 0, 5})
	a.Equal(5.0, pole.R)
	a.Equal(0.0, pole.Theta)
}
