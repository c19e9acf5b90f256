package overlay

import (
	"fmt"
	"strings"
)

// Anchor is a placement of the text block relative to the region of interest.
//
// The set is closed: only the constants below are valid. Use ParseAnchor to
// turn a user-supplied token into an Anchor.
type Anchor int

const (
	InsideTopLeft Anchor = iota
	InsideTopCenter
	InsideTopRight
	InsideBottomLeft
	InsideBottomCenter
	InsideBottomRight
	OutsideTopLeft
	OutsideTopCenter
	OutsideTopRight
	OutsideBottomLeft
	OutsideBottomCenter
	OutsideBottomRight
	OutsideLeft
	OutsideRight
)

var anchorNames = [...]string{
	InsideTopLeft:       "inside_top_left",
	InsideTopCenter:     "inside_top_center",
	InsideTopRight:      "inside_top_right",
	InsideBottomLeft:    "inside_bottom_left",
	InsideBottomCenter:  "inside_bottom_center",
	InsideBottomRight:   "inside_bottom_right",
	OutsideTopLeft:      "outside_top_left",
	OutsideTopCenter:    "outside_top_center",
	OutsideTopRight:     "outside_top_right",
	OutsideBottomLeft:   "outside_bottom_left",
	OutsideBottomCenter: "outside_bottom_center",
	OutsideBottomRight:  "outside_bottom_right",
	OutsideLeft:         "outside_left",
	OutsideRight:        "outside_right",
}

// Anchors returns every valid anchor in declaration order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchorNames))
	for i := range anchorNames {
		out[i] = Anchor(i)
	}
	return out
}

// AnchorNames returns the tokens accepted by ParseAnchor, in declaration order.
func AnchorNames() []string {
	return append([]string(nil), anchorNames[:]...)
}

// ParseAnchor converts a token such as "outside_top_center" into an Anchor.
//
// Matching is case-insensitive and dashes are accepted in place of underscores,
// so "Outside-Top-Center" is also valid. Unknown tokens return an error wrapping
// ErrInvalidAnchor that lists every valid token.
func ParseAnchor(s string) (Anchor, error) {
	token := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range anchorNames {
		if name == token {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid anchors: %s)", ErrInvalidAnchor, s, strings.Join(anchorNames[:], ", "))
}

// Valid reports whether a is one of the declared anchors.
func (a Anchor) Valid() bool {
	return a >= 0 && int(a) < len(anchorNames)
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// IsOutside reports whether the anchor places the block outside the region.
func (a Anchor) IsOutside() bool {
	return a >= OutsideTopLeft && a <= OutsideRight
}

// Inside returns the inside anchor used when a does not fit on the canvas.
//
// Outside anchors keep their vertical half and horizontal alignment, so
// OutsideBottomRight falls back to InsideBottomRight. The side anchors have
// no vertical half and fall back to the top corner on their side. Inside
// anchors return themselves.
func (a Anchor) Inside() Anchor {
	switch a {
	case OutsideTopLeft, OutsideLeft:
		return InsideTopLeft
	case OutsideTopCenter:
		return InsideTopCenter
	case OutsideTopRight, OutsideRight:
		return InsideTopRight
	case OutsideBottomLeft:
		return InsideBottomLeft
	case OutsideBottomCenter:
		return InsideBottomCenter
	case OutsideBottomRight:
		return InsideBottomRight
	default:
		return a
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAnchor, int(a))
	}
	return []byte(anchorNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
