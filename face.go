package pinwheel

import (
	"image/color"
)

// Face is either a quad patch (PolygonKind) or a flat disc (CircleKind).
// Vertices is only meaningful for polygons and Radius only for circles.
type Face struct {
	Kind     FaceKind
	Center   Vector
	Vertices [4]Vector
	Radius   float64
	Stroke   color.Color
	Fill     color.Color
}

func PolygonFace(center Vector, vertices [4]Vector, stroke, fill color.Color) Face {
	return Face{Kind: PolygonKind, Center: center, Vertices: vertices, Stroke: stroke, Fill: fill}
}

func CircleFace(center Vector, radius float64, stroke, fill color.Color) Face {
	return Face{Kind: CircleKind, Center: center, Radius: radius, Stroke: stroke, Fill: fill}
}

// depthOrder sorts faces back to front as seen from origin after the
// perspective transform. Keys are computed once per sort.
type depthOrder struct {
	faces []Face
	keys  []Vector
}

func newDepthOrder(faces []Face, origin Vector, perspective *Transform) *depthOrder {
	keys := make([]Vector, len(faces))
	for i := range faces {
		keys[i] = origin.Subtract(faces[i].Center.Transform(perspective))
	}
	return &depthOrder{faces: faces, keys: keys}
}

func (d *depthOrder) Len() int {
	return len(d.faces)
}

func (d *depthOrder) Less(i, j int) bool {
	return compareDepth(d.keys[i], d.keys[j]) < 0
}

func (d *depthOrder) Swap(i, j int) {
	d.faces[i], d.faces[j] = d.faces[j], d.faces[i]
	d.keys[i], d.keys[j] = d.keys[j], d.keys[i]
}

// compareDepth orders by Z, then X, then Y.
func compareDepth(a, b Vector) int {
	for _, k := range [...]int{2, 0, 1} {
		if a[k] < b[k] {
			return -1
		}
		if a[k] > b[k] {
			return 1
		}
	}
	return 0
}
