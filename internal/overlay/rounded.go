package overlay

import (
	"image"
	"image/color"
)

// RoundedRectangle decomposes the outline of r into drawing primitives.
//
// The result holds four straight sides, inset by the radius at both ends and
// ordered top, right, bottom, left, followed by four quarter arcs ordered
// top-left, top-right, bottom-right, bottom-left. A radius of zero or less
// yields only the four sides, meeting at the rectangle corners. A radius of
// half the shorter side or more is clamped to it, producing a pill whose
// sides along the shorter axis have zero length. Radii are whole pixels, so
// when the shorter side is odd those sides keep a length of one pixel.
func RoundedRectangle(r image.Rectangle, radius int, c color.RGBA, thickness int) []Command {
	r = r.Canon()
	rad := clampRadius(radius, r)
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	cmds := []Command{
		Line{From: image.Pt(x0+rad, y0), To: image.Pt(x1-rad, y0), Color: c, Thickness: thickness},
		Line{From: image.Pt(x1, y0+rad), To: image.Pt(x1, y1-rad), Color: c, Thickness: thickness},
		Line{From: image.Pt(x1-rad, y1), To: image.Pt(x0+rad, y1), Color: c, Thickness: thickness},
		Line{From: image.Pt(x0, y1-rad), To: image.Pt(x0, y0+rad), Color: c, Thickness: thickness},
	}
	if rad == 0 {
		return cmds
	}

	return append(cmds,
		Arc{Center: image.Pt(x0+rad, y0+rad), Radius: rad, Start: 180, End: 270, Color: c, Thickness: thickness},
		Arc{Center: image.Pt(x1-rad, y0+rad), Radius: rad, Start: 270, End: 360, Color: c, Thickness: thickness},
		Arc{Center: image.Pt(x1-rad, y1-rad), Radius: rad, Start: 0, End: 90, Color: c, Thickness: thickness},
		Arc{Center: image.Pt(x0+rad, y1-rad), Radius: rad, Start: 90, End: 180, Color: c, Thickness: thickness},
	)
}

// clampRadius limits radius to [0, min(width, height)/2] for r, rounding down.
func clampRadius(radius int, r image.Rectangle) int {
	if radius <= 0 {
		return 0
	}
	return min(radius, min(r.Dx(), r.Dy())/2)
}
