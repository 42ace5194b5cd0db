package pinwheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraProject(t *testing.T) {
	a := assert.New(t)

	c := NewCamera(CameraOptions{Width: 600, Height: 400, Zoom: 0.1})
	a.Equal(Point{300, 200}, c.Project(Zeroes()))
	a.Equal(Point{300, 200}, c.Project(Vector{0, 0, 55}), "depth is dropped")

	p := c.Project(Vector{0, 1, 0})
	a.InDelta(300, p.X, 1e-9)
	a.InDelta(190, p.Y, 1e-9, "y grows downwards")

	w, h := c.Size()
	a.Equal(600.0, w)
	a.Equal(400.0, h)
	a.Equal(0.1, c.Zoom())
}

func TestCameraAxes(t *testing.T) {
	a := assert.New(t)

	c := NewCamera(CameraOptions{Width: 100, Height: 100, Zoom: 1})
	right := c.Project(XAxis)
	left := c.Project(XAxis.Scale(-1))
	a.NotEqual(right.X, left.X)
	a.InDelta(100, right.X+left.X, 1e-9)
	a.InDelta(50, right.Y, 1e-9)
}

func TestCameraDefaults(t *testing.T) {
	a := assert.New(t)

	c := NewCamera(CameraOptions{Width: 10, Height: 10})
	a.Equal(1.0, c.Zoom())

	moved := NewCamera(CameraOptions{Position: Vector{1, 2, 0}, Width: 10, Height: 10, Zoom: 1})
	a.Equal(Point{5, 5}, moved.Project(Vector{1, 2, 9}))
}

func TestFitZoom(t *testing.T) {
	a := assert.New(t)

	faces := Patches(28, DefaultRange, nil, nil)
	box, err := Bounds(faces)
	require.NoError(t, err)

	zoom := FitZoom(box, 600, 400, 0.1)
	c := NewCamera(CameraOptions{Width: 600, Height: 400, Zoom: zoom})

	m := Identity().RotX(DegToRad(45))
	for step := 0; step < 36; step++ {
		m.RotZ(DegToRad(10))
		for _, f := range faces {
			for _, v := range f.Vertices {
				p := c.Project(v.Transform(m))
				a.True(p.X >= 0 && p.X <= 600 && p.Y >= 0 && p.Y <= 400, "%v off surface", p)
			}
		}
	}

	a.Equal(1.0, FitZoom(box, 0, 400, 0.1))
}
