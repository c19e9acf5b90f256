package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
)

// Canvas is a drawable copy of an image.
//
// It implements overlay.Canvas and overlay.ArcDrawer with a gg.Context.
// Drawing outside the image is clipped. Like Measurer it caches font faces
// and must not be shared between goroutines.
type Canvas struct {
	*Measurer
	dc *gg.Context
}

// NewCanvas copies img into a new canvas whose origin is (0,0). The source
// image is never modified.
func NewCanvas(img image.Image, f *truetype.Font) *Canvas {
	return &Canvas{
		Measurer: NewMeasurer(f),
		dc:       gg.NewContextForImage(imaging.Clone(img)),
	}
}

// Size returns the canvas width and height.
func (c *Canvas) Size() image.Point {
	return image.Pt(c.dc.Width(), c.dc.Height())
}

// Image returns the canvas content.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) FillRect(r image.Rectangle, radius int, col color.Color) {
	x, y, w, h := rectFloats(r)
	c.dc.SetColor(col)
	if radius > 0 {
		c.dc.DrawRoundedRectangle(x, y, w, h, float64(radius))
	} else {
		c.dc.DrawRectangle(x, y, w, h)
	}
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color, thickness int) {
	x, y, w, h := rectFloats(r)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(thickness))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

func (c *Canvas) DrawLine(from, to image.Point, col color.Color, thickness int) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(thickness))
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	c.dc.Stroke()
}

// DrawArc strokes a circular arc; angles are degrees clockwise from +X.
func (c *Canvas) DrawArc(center image.Point, radius int, start, end float64, col color.Color, thickness int) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(thickness))
	c.dc.NewSubPath()
	c.dc.DrawArc(float64(center.X), float64(center.Y), float64(radius), gg.Radians(start), gg.Radians(end))
	c.dc.Stroke()
}

// DrawText draws text with its baseline starting at origin.
func (c *Canvas) DrawText(origin image.Point, text string, scale float64, col color.Color, thickness int) {
	c.dc.SetFontFace(c.Face(scale))
	c.dc.SetColor(col)

	t := max(1, thickness)
	for dy := 0; dy < t; dy++ {
		for dx := 0; dx < t; dx++ {
			c.dc.DrawString(text, float64(origin.X+dx), float64(origin.Y-dy))
		}
	}
}

func rectFloats(r image.Rectangle) (x, y, w, h float64) {
	r = r.Canon()
	return float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())
}
