package pinwheel

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha  = 2
	perlinBeta   = 2
	perlinOctave = 3
)

// Field is a deterministic, continuous scalar field over 3-D input with
// values in [-1, 1].
type Field interface {
	Noise(x, y, z float64) float64
}

type SimplexField struct {
	noise opensimplex.Noise
}

func (f *SimplexField) Noise(x, y, z float64) float64 {
	return clamp(f.noise.Eval3(x, y, z), -1, 1)
}

type PerlinField struct {
	noise *perlin.Perlin
}

func (f *PerlinField) Noise(x, y, z float64) float64 {
	return clamp(f.noise.Noise3D(x, y, z), -1, 1)
}

// NewField builds the permutation table for kind from seed. Unknown kinds
// fall back to Simplex.
func NewField(kind NoiseKind, seed int64) Field {
	switch kind {
	case Perlin:
		return &PerlinField{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)}
	default:
		return &SimplexField{noise: opensimplex.New(seed)}
	}
}

// Seed turns a seed value into a permutation seed. Fractions in (0, 1) are
// scaled up to 16 bits and small seeds are mirrored into the high byte so
// that nearby values still produce distinct tables.
func Seed(value float64) int64 {
	if value > 0 && value < 1 {
		value *= 65536
	}
	s := int64(math.Floor(value))
	if s >= 0 && s < 256 {
		s |= s << 8
	}
	return s
}
