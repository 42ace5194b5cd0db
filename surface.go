package pinwheel

import (
	"image/color"
)

// Surface is a 2-D drawing target. Coordinates are surface units with the
// origin in the top left corner. The shadow attributes apply to every draw
// call made after they are set.
type Surface interface {
	Clear(width, height float64)
	DrawLine(from, to Point, stroke color.Color, width float64)
	DrawCircle(center Point, radius float64, stroke, fill color.Color, width float64)
	DrawPolygon(points []Point, stroke, fill color.Color, width float64)
	SetShadowBlur(blur float64)
	SetShadowColor(c color.Color)
}
