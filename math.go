package pinwheel

import (
	"math"
)

// Remap maps value linearly from the interval from onto the interval to.
func Remap(value float64, from, to [2]float64) float64 {
	return to[0] + (value-from[0])*(to[1]-to[0])/(from[1]-from[0])
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func pow2(x float64) float64 {
	return x * x
}
