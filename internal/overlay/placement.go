package overlay

import (
	"fmt"
	"image"
)

// Placement is the outcome of resolving an anchor against the canvas.
type Placement struct {
	// TopLeft is the top-left corner of the text block.
	TopLeft image.Point

	// Size is the block size the placement was computed for.
	Size image.Point

	// Requested is the anchor asked for; Anchor is the one actually used.
	Requested Anchor
	Anchor    Anchor

	// Adapted is set when Anchor differs from Requested.
	Adapted bool

	// Clamped is set when no anchor fitted and the block was pushed back into
	// the canvas. If the block is larger than the canvas it still overflows.
	Clamped bool
}

// Rect returns the block rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rectangle{Min: p.TopLeft, Max: p.TopLeft.Add(p.Size)}
}

// ResolveAnchor places a block of the given size relative to roi on a canvas.
//
// Parameters:
//   - canvas: canvas width and height in pixels. Both must be >= 0.
//   - roi: region the anchor refers to. Nil means the whole canvas. A region
//     hanging off the canvas is reduced to its visible part first.
//   - anchor: the requested placement.
//   - size: block width and height.
//   - margin: gap between the block and the ROI edge.
//
// # Adaptation
//
// The block fits when it lies entirely within [0,W) x [0,H). If the block for
// the requested anchor does not fit, the anchor's inside counterpart is tried
// (see Anchor.Inside). If that does not fit either, each axis of the top-left
// corner is clamped independently into [0, W-width] and [0, H-height], using 0
// when the block is wider or taller than the canvas.
func ResolveAnchor(canvas image.Point, roi *Region, anchor Anchor, size image.Point, margin int) (Placement, error) {
	if canvas.X < 0 || canvas.Y < 0 {
		return Placement{}, fmt.Errorf("%w: canvas size %dx%d must not be negative", ErrInvalidParameter, canvas.X, canvas.Y)
	}
	if !anchor.Valid() {
		return Placement{}, fmt.Errorf("%w: %d", ErrInvalidAnchor, int(anchor))
	}

	bounds := image.Rect(0, 0, canvas.X, canvas.Y)
	area := bounds
	if roi != nil {
		if err := roi.Validate(); err != nil {
			return Placement{}, err
		}
		area = roi.Rect()
		if visible := area.Intersect(bounds); !visible.Empty() {
			area = visible
		}
	}

	p := Placement{
		TopLeft:   anchorPosition(anchor, area, size, margin),
		Size:      size,
		Requested: anchor,
		Anchor:    anchor,
	}
	if fits(p.TopLeft, size, canvas) {
		return p, nil
	}

	p.Anchor = anchor.Inside()
	p.Adapted = p.Anchor != anchor
	p.TopLeft = anchorPosition(p.Anchor, area, size, margin)
	if fits(p.TopLeft, size, canvas) {
		return p, nil
	}

	p.TopLeft = image.Pt(
		clamp(p.TopLeft.X, 0, max(0, canvas.X-size.X)),
		clamp(p.TopLeft.Y, 0, max(0, canvas.Y-size.Y)),
	)
	p.Clamped = true
	return p, nil
}

// anchorPosition returns the top-left corner of the block for anchor a.
func anchorPosition(a Anchor, area image.Rectangle, size image.Point, margin int) image.Point {
	w, h := size.X, size.Y

	switch a {
	case OutsideLeft:
		return image.Pt(area.Min.X-w-margin, area.Min.Y+half(area.Dy()-h))
	case OutsideRight:
		return image.Pt(area.Max.X+margin, area.Min.Y+half(area.Dy()-h))
	}

	var x int
	switch a {
	case InsideTopLeft, InsideBottomLeft, OutsideTopLeft, OutsideBottomLeft:
		x = area.Min.X + margin
	case InsideTopCenter, InsideBottomCenter, OutsideTopCenter, OutsideBottomCenter:
		x = area.Min.X + half(area.Dx()-w)
	default:
		x = area.Max.X - w - margin
	}

	var y int
	switch a {
	case InsideTopLeft, InsideTopCenter, InsideTopRight:
		y = area.Min.Y + margin
	case InsideBottomLeft, InsideBottomCenter, InsideBottomRight:
		y = area.Max.Y - h - margin
	case OutsideTopLeft, OutsideTopCenter, OutsideTopRight:
		y = area.Min.Y - h - margin
	default:
		y = area.Max.Y + margin
	}

	return image.Pt(x, y)
}

func fits(topLeft, size, canvas image.Point) bool {
	return topLeft.X >= 0 && topLeft.Y >= 0 &&
		topLeft.X+size.X <= canvas.X && topLeft.Y+size.Y <= canvas.Y
}

// half divides by two rounding toward negative infinity.
func half(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
