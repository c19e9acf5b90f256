package overlay

import (
	"image"
	"image/color"
)

// Measurer reports the rendered extent of a single line of text.
//
// Width is the advance of the whole string and height the distance from the
// baseline to the top of the tallest glyph, both in pixels, at the given font
// scale and stroke thickness.
type Measurer interface {
	MeasureText(text string, scale float64, thickness int) (width, height int)
}

// Canvas is the drawing surface the commands are applied to.
//
// Implementations clip anything that falls outside the surface; callers never
// need to pre-clip. Drawing mutates the surface in place, later draws win.
type Canvas interface {
	Measurer
	FillRect(r image.Rectangle, radius int, c color.Color)
	StrokeRect(r image.Rectangle, c color.Color, thickness int)
	DrawLine(from, to image.Point, c color.Color, thickness int)
	DrawText(origin image.Point, text string, scale float64, c color.Color, thickness int)
}

// ArcDrawer is implemented by canvases with native arc support.
//
// Angles are in degrees, measured clockwise from the positive X axis in image
// space. Canvases without it get arcs as short line segments.
type ArcDrawer interface {
	DrawArc(center image.Point, radius int, start, end float64, c color.Color, thickness int)
}
