package pinwheel

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Point is a projected position on the drawing surface.
type Point struct {
	X, Y float64
}

type CameraOptions struct {
	Position  Vector
	Direction Vector
	Up        Vector
	Width     float64
	Height    float64
	Zoom      float64
}

// Camera is an orthographic projector. Zoom is the number of scene units per
// surface unit. A zero Direction looks along +Z.
type Camera struct {
	position Vector
	right    Vector
	up       Vector
	width    float64
	height   float64
	zoom     float64
}

func NewCamera(opts CameraOptions) *Camera {
	forward := opts.Direction
	if forward.Length() == 0 {
		forward = ZAxis
	}
	forward = forward.Normalize()

	up := opts.Up
	if up.Length() == 0 {
		up = YAxis
	}
	right := up.Cross(forward).Normalize()

	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	return &Camera{
		position: opts.Position,
		right:    right,
		up:       forward.Cross(right),
		width:    opts.Width,
		height:   opts.Height,
		zoom:     zoom,
	}
}

// Project drops the depth of p along the viewing axis and maps the rest into
// surface coordinates, centred in the output and with y growing downwards.
func (c *Camera) Project(p Vector) Point {
	rel := p.Subtract(c.position)
	return Point{
		X: c.width/2 + rel.Dot(c.right)/c.zoom,
		Y: c.height/2 - rel.Dot(c.up)/c.zoom,
	}
}

func (c *Camera) Zoom() float64 { return c.zoom }

func (c *Camera) Size() (float64, float64) { return c.width, c.height }

// FitZoom returns the zoom at which box stays on a width×height surface under
// any rotation about the origin, leaving margin (a fraction of the shorter
// side) free on each edge.
func FitZoom(box vec3d.Box, width, height, margin float64) float64 {
	side := math.Min(width, height) * (1 - 2*margin)
	if side <= 0 {
		return 1
	}
	d := reach(box)
	if d == 0 {
		return 1
	}
	return 2 * d / side
}
