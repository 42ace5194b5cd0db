package pinwheel

import (
	"image/color"
	"math"
)

const gridEpsilon = 1e-9

// Range is a 2-D sampling range. Samples start at From and advance by By on
// each axis independently, stopping before To. An axis whose step is not
// positive has no samples.
type Range struct {
	From [2]float64
	To   [2]float64
	By   [2]float64
}

func steps(from, to, by float64) int {
	if !(by > 0) {
		return 0
	}
	n := math.Ceil((to-from)/by - gridEpsilon)
	if n < 0 {
		return 0
	}
	return int(n)
}

func (r Range) Counts() (int, int) {
	return steps(r.From[0], r.To[0], r.By[0]), steps(r.From[1], r.To[1], r.By[1])
}

func (r Range) Count() int {
	rows, cols := r.Counts()
	return rows * cols
}

// Grid calls mapper once per sample of r, first axis outer, and returns the
// results in construction order. By must be positive on both axes.
func Grid[T any](r Range, mapper func(sample [2]float64) T) []T {
	rows, cols := r.Counts()

	out := make([]T, 0, rows*cols)
	for i := 0; i < rows; i++ {
		a := r.From[0] + float64(i)*r.By[0]
		for j := 0; j < cols; j++ {
			b := r.From[1] + float64(j)*r.By[1]
			out = append(out, mapper([2]float64{a, b}))
		}
	}
	return out
}

// Patches builds one quad face per (θ, φ) sample of r, given in degrees, on
// a sphere of the given radius.
func Patches(radius float64, r Range, stroke, fill color.Color) []Face {
	halfTheta := DegToRad(r.By[0] / 2)
	halfPhi := DegToRad(r.By[1] / 2)

	return Grid(r, func(degrees [2]float64) Face {
		theta, phi := DegToRad(degrees[0]), DegToRad(degrees[1])
		center := ToCartesian(Spherical{radius, theta, phi})

		return PolygonFace(center, [4]Vector{
			ToCartesian(Spherical{radius, theta - halfTheta, phi - halfPhi}),
			ToCartesian(Spherical{radius, theta - halfTheta, phi + halfPhi}),
			ToCartesian(Spherical{radius, theta + halfTheta, phi + halfPhi}),
			ToCartesian(Spherical{radius, theta + halfTheta, phi - halfPhi}),
		}, stroke, fill)
	})
}
