package overlay

import (
	"fmt"
	"image/color"
	"strings"
)

// DrawOrder controls the z-order of the ROI box relative to the text block.
type DrawOrder int

const (
	// OrderBoxFirst draws the ROI box, then the text background, then the text.
	// The text block therefore covers the box where they overlap.
	OrderBoxFirst DrawOrder = iota

	// OrderBoxLast draws the text background and text, then the ROI box on top.
	OrderBoxLast
)

func (o DrawOrder) String() string {
	switch o {
	case OrderBoxFirst:
		return "box_first"
	case OrderBoxLast:
		return "box_last"
	default:
		return fmt.Sprintf("DrawOrder(%d)", int(o))
	}
}

// ParseDrawOrder converts "box_first" or "box_last" into a DrawOrder.
func ParseDrawOrder(s string) (DrawOrder, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "box_first":
		return OrderBoxFirst, nil
	case "box_last":
		return OrderBoxLast, nil
	default:
		return 0, fmt.Errorf("%w: draw order %q (valid: box_first, box_last)", ErrInvalidParameter, s)
	}
}

// Style holds every visual parameter of an overlay.
//
// Distances are in pixels. Padding is the inset between the background box and
// the text, LineSpacing the gap between consecutive lines, and Margin the gap
// between the text block and the ROI edge used by the anchor formulas.
type Style struct {
	// FontScale multiplies the canvas' base font size. Must be > 0.
	FontScale float64

	// FontColor is the text color.
	FontColor color.RGBA

	// Thickness is the stroke weight of the text. Must be > 0.
	Thickness int

	// Background is the fill color of the text block. Nil disables the fill.
	Background *color.RGBA

	Padding      int
	LineSpacing  int
	Margin       int
	CornerRadius int

	// BoxColor, BoxThickness and BoxRadius style the ROI box.
	BoxColor     color.RGBA
	BoxThickness int
	BoxRadius    int

	// Order is the z-order of the ROI box against the text block.
	Order DrawOrder
}

// DefaultStyle returns black text on a white rounded box with a green ROI box.
func DefaultStyle() Style {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return Style{
		FontScale:    1.0,
		FontColor:    color.RGBA{A: 255},
		Thickness:    2,
		Background:   &bg,
		Padding:      10,
		LineSpacing:  20,
		Margin:       20,
		CornerRadius: 10,
		BoxColor:     color.RGBA{G: 255, A: 255},
		BoxThickness: 2,
		BoxRadius:    10,
		Order:        OrderBoxFirst,
	}
}

// Validate checks every field and returns an error wrapping ErrInvalidParameter
// for the first value out of range.
func (s Style) Validate() error {
	switch {
	case s.FontScale <= 0:
		return fmt.Errorf("%w: font scale must be positive, got %g", ErrInvalidParameter, s.FontScale)
	case s.Thickness <= 0:
		return fmt.Errorf("%w: thickness must be positive, got %d", ErrInvalidParameter, s.Thickness)
	case s.Padding < 0:
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidParameter, s.Padding)
	case s.LineSpacing < 0:
		return fmt.Errorf("%w: line spacing must not be negative, got %d", ErrInvalidParameter, s.LineSpacing)
	case s.Margin < 0:
		return fmt.Errorf("%w: margin must not be negative, got %d", ErrInvalidParameter, s.Margin)
	case s.CornerRadius < 0:
		return fmt.Errorf("%w: corner radius must not be negative, got %d", ErrInvalidParameter, s.CornerRadius)
	case s.BoxThickness <= 0:
		return fmt.Errorf("%w: box thickness must be positive, got %d", ErrInvalidParameter, s.BoxThickness)
	case s.BoxRadius < 0:
		return fmt.Errorf("%w: box radius must not be negative, got %d", ErrInvalidParameter, s.BoxRadius)
	case s.Order != OrderBoxFirst && s.Order != OrderBoxLast:
		return fmt.Errorf("%w: unknown draw order %d", ErrInvalidParameter, int(s.Order))
	}
	return nil
}
