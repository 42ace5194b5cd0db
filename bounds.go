package pinwheel

import (
	"errors"
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Bounds returns the axis-aligned box around every face centre and polygon
// vertex.
func Bounds(faces []Face) (vec3d.Box, error) {
	if len(faces) == 0 {
		return vec3d.Box{}, errors.New("no face")
	}
	r := vec3d.Box{Min: vec3d.MaxVal, Max: vec3d.MinVal}
	for i := range faces {
		f := &faces[i]
		r.Extend((*vec3d.T)(&f.Center))
		if f.Kind != PolygonKind {
			continue
		}
		for j := range f.Vertices {
			r.Extend((*vec3d.T)(&f.Vertices[j]))
		}
	}
	return r, nil
}

// reach is the largest distance from the origin to a corner of box, which
// bounds the box under any rotation about the origin.
func reach(box vec3d.Box) float64 {
	var d float64
	for _, x := range [2]float64{box.Min[0], box.Max[0]} {
		for _, y := range [2]float64{box.Min[1], box.Max[1]} {
			for _, z := range [2]float64{box.Min[2], box.Max[2]} {
				d = math.Max(d, math.Sqrt(pow2(x)+pow2(y)+pow2(z)))
			}
		}
	}
	return d
}
