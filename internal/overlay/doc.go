// Package overlay computes where annotation text and region boxes go on an image.
//
// The package is pure geometry: it never touches pixels. Given the canvas size,
// an optional region of interest (ROI), the text lines and a Style, it sizes the
// text block, resolves the requested Anchor against the canvas, and emits an
// ordered list of draw Commands. Rasterizing those commands is delegated to a
// Canvas implementation (see internal/imaging for the gg-backed one).
//
// # Coordinate System
//
// Coordinates follow the image convention used across this module:
//   - (0,0) is the top-left pixel, X grows rightward, Y grows downward
//   - Rectangles are half-open: Min is inclusive, Max is exclusive
//   - Text origins are baseline-left, matching font.Drawer and gg.DrawString
//
// # Anchors and Adaptation
//
// An Anchor places the text block relative to the ROI (or the whole canvas when
// no ROI is given). Inside anchors put the block within the ROI, outside anchors
// put it next to the ROI. When the block computed for the requested anchor would
// leave the canvas, the placer falls back to the matching inside anchor, and if
// that still does not fit, clamps the block into the canvas. A block larger than
// the canvas is clamped to (0,0) and allowed to overflow; the canvas clips it.
//
// # Error Handling
//
// Invalid input fails before any command is produced:
//   - ErrInvalidParameter for bad style values
//   - ErrInvalidRegion for a malformed ROI
//   - ErrInvalidAnchor for an unknown anchor token
//
// All errors wrap one of these sentinels and can be tested with errors.Is.
//
// # Thread Safety
//
// Every function in this package is a pure function of its inputs. Plans for
// different regions may be computed concurrently; applying the resulting
// commands to a shared Canvas must be serialized by the caller.
package overlay
