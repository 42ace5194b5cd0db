package pinwheel

import (
	"math"
)

func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

// Rotator accumulates a rotation in degrees.
type Rotator struct {
	Degrees float64
}

func (r *Rotator) Add(degrees float64) {
	r.Degrees += degrees
}

func (r Rotator) Radians() float64 {
	return DegToRad(r.Degrees)
}

// Normalized folds the accumulated angle into [0, 360).
func (r Rotator) Normalized() Rotator {
	d := math.Mod(r.Degrees, 360)
	if d < 0 {
		d += 360
	}
	return Rotator{d}
}
