package overlay

import (
	"fmt"
	"image"
)

// Region is a region of interest given as origin and size.
//
// A valid region has X >= 0, Y >= 0, Width > 0 and Height > 0. It may extend
// past the canvas; anchors are then computed against its visible part.
type Region struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Validate returns an error wrapping ErrInvalidRegion if r is malformed.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidRegion, r.Width, r.Height)
	}
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("%w: origin (%d,%d) must not be negative", ErrInvalidRegion, r.X, r.Y)
	}
	return nil
}

// Rect returns the region as a half-open image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
