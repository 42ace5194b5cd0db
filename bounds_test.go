package pinwheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	a := assert.New(t)

	_, err := Bounds(nil)
	a.Error(err)

	faces := []Face{
		CircleFace(Vector{0, 0, 3}, 80, nil, nil),
		PolygonFace(Vector{1, 1, 1}, [4]Vector{{-2, 0, 0}, {0, 5, 0}, {1, 0, -1}, {0, 0, 0}}, nil, nil),
	}
	box, err := Bounds(faces)
	a.NoError(err)
	a.Equal(-2.0, box.Min[0])
	a.Equal(0.0, box.Min[1])
	a.Equal(-1.0, box.Min[2])
	a.Equal(1.0, box.Max[0])
	a.Equal(5.0, box.Max[1])
	a.Equal(3.0, box.Max[2])

	a.InDelta(math.Sqrt(4+25+9), reach(box), 1e-9)
}
