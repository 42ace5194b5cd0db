package pinwheel

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	Black     = colornames.Black
	LightGrey = colornames.Lightgrey
)

// Palette is an ordered set of fill colours picked by spin angle.
type Palette []color.RGBA

func DefaultPalette() Palette {
	return Palette{
		{0x26, 0x46, 0x53, 0xff},
		{0x2a, 0x9d, 0x8f, 0xff},
		{0xe9, 0xc4, 0x6a, 0xff},
		{0xf4, 0xa2, 0x61, 0xff},
		{0xe7, 0x6f, 0x51, 0xff},
	}
}

// Index returns the colour for a spin angle in [-360, 360] degrees. The last
// colour is only reached at exactly 360.
func (p Palette) Index(angle float64) color.RGBA {
	i := int(math.Floor(Remap(angle, [2]float64{-360, 360}, [2]float64{0, float64(len(p) - 1)})))
	if i < 0 {
		i = 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

// ParsePalette reads colour names (as in CSS) or #rrggbb values.
func ParsePalette(entries []string) (Palette, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	p := make(Palette, 0, len(entries))
	for _, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
