package raster

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// shadow paints the blurred silhouette of path in the shadow colour.
func (c *Canvas) shadow(path func(*vector.Rasterizer)) {
	if c.shadowBlur <= 0 || c.shadowColor == nil {
		return
	}
	if _, _, _, a := c.shadowColor.RGBA(); a == 0 {
		return
	}

	b := c.img.Bounds()
	if c.mask == nil || c.mask.Bounds() != b {
		c.mask = image.NewAlpha(b)
	} else {
		clear(c.mask.Pix)
	}

	z := c.reset()
	path(z)
	z.Draw(c.mask, b, image.Opaque, image.Point{})

	blurred := blurMask(c.mask, c.shadowBlur)
	draw.DrawMask(c.img, b, image.NewUniform(c.shadowColor), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
}

// blurMask applies a gaussian blur with sigma = blur/2 to m. Only the alpha
// channel of the result is meaningful.
func blurMask(m *image.Alpha, blur float64) *image.NRGBA {
	return imaging.Blur(m, blur/2)
}
