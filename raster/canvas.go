// Package raster implements pinwheel.Surface on an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/flywave/go-pinwheel"
)

var _ pinwheel.Surface = (*Canvas)(nil)

// Canvas draws filled and stroked shapes with anti-aliasing. Shapes drawn
// while the shadow blur is positive cast a blurred shadow in the shadow
// colour underneath them.
type Canvas struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	background color.Color

	shadowBlur  float64
	shadowColor color.Color
	mask        *image.Alpha
}

func New(width, height int) *Canvas {
	return &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		z:           vector.NewRasterizer(width, height),
		background:  color.Transparent,
		shadowColor: color.Transparent,
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) SetBackground(bg color.Color) {
	c.background = bg
}

func (c *Canvas) SetShadowBlur(blur float64) {
	c.shadowBlur = blur
}

func (c *Canvas) SetShadowColor(col color.Color) {
	c.shadowColor = col
}

// Clear resizes the canvas if needed and fills it with the background.
func (c *Canvas) Clear(width, height float64) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w != c.img.Bounds().Dx() || h != c.img.Bounds().Dy() {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
		c.mask = nil
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

func (c *Canvas) DrawLine(from, to pinwheel.Point, stroke color.Color, width float64) {
	segment := func(z *vector.Rasterizer) {
		segmentPath(z, from, to, width)
	}
	c.shadow(segment)
	c.fill(segment, stroke)
}

func (c *Canvas) DrawPolygon(points []pinwheel.Point, stroke, fill color.Color, width float64) {
	if len(points) < 2 {
		return
	}
	area := func(z *vector.Rasterizer) {
		polygonPath(z, points, false)
	}
	c.shadow(area)
	c.fill(area, fill)
	c.outline(points, stroke, width)
}

func (c *Canvas) DrawCircle(center pinwheel.Point, radius float64, stroke, fill color.Color, width float64) {
	rim := circlePoints(center, radius)
	area := func(z *vector.Rasterizer) {
		polygonPath(z, rim, false)
	}
	c.shadow(area)
	c.fill(area, fill)

	if width <= 0 || radius <= width/2 {
		return
	}
	outer := circlePoints(center, radius+width/2)
	inner := circlePoints(center, radius-width/2)
	c.fill(func(z *vector.Rasterizer) {
		polygonPath(z, outer, false)
		polygonPath(z, inner, true)
	}, stroke)
}

func (c *Canvas) outline(points []pinwheel.Point, stroke color.Color, width float64) {
	if width <= 0 {
		return
	}
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		c.fill(func(z *vector.Rasterizer) {
			segmentPath(z, a, b, width)
		}, stroke)
	}
}

func (c *Canvas) reset() *vector.Rasterizer {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	return c.z
}

func (c *Canvas) fill(path func(*vector.Rasterizer), col color.Color) {
	if col == nil {
		return
	}
	if _, _, _, a := col.RGBA(); a == 0 {
		return
	}
	z := c.reset()
	path(z)
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func polygonPath(z *vector.Rasterizer, points []pinwheel.Point, reverse bool) {
	n := len(points)
	at := func(i int) pinwheel.Point {
		if reverse {
			return points[n-1-i]
		}
		return points[i]
	}
	p := at(0)
	z.MoveTo(float32(p.X), float32(p.Y))
	for i := 1; i < n; i++ {
		p = at(i)
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// segmentPath adds the rectangle of the given width centred on a-b.
func segmentPath(z *vector.Rasterizer, a, b pinwheel.Point, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	polygonPath(z, []pinwheel.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, false)
}

func circlePoints(center pinwheel.Point, radius float64) []pinwheel.Point {
	n := int(math.Max(24, math.Ceil(2*math.Pi*radius/2)))
	points := make([]pinwheel.Point, n)
	for i := range points {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		points[i] = pinwheel.Point{X: center.X + radius*c, Y: center.Y + radius*s}
	}
	return points
}
