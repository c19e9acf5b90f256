package overlay

import "errors"

var (
	// ErrInvalidParameter reports a style value outside its allowed range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidRegion reports a region of interest with a negative origin or
	// a non-positive size.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidAnchor reports an anchor token outside the closed anchor set.
	ErrInvalidAnchor = errors.New("invalid anchor")
)
