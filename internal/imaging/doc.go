// Package imaging provides the raster side of the overlay tools.
//
// The overlay package decides where things go; this package draws them. It
// loads and caches images, implements overlay.Canvas on top of gg, measures
// text with TrueType faces, parses colors and encodes or saves the result.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Fonts and Text Size
//
// Text is rendered with a TrueType font, the embedded Go Regular font unless
// another one is loaded with LoadFont. A font scale of 1.0 renders at
// BaseFontSize pixels; other scales multiply it. Stroke thickness is emulated
// by drawing the glyphs thickness x thickness times, each copy shifted by one
// pixel, and widens the measured extent by thickness-1.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Canvas and Measurer cache
// font faces and are not; create one per goroutine. Annotator is safe for
// concurrent use because it builds a fresh Canvas per call.
//
// # Color Representation
//
// Colors are accepted as "#RRGGBB", "#RGB", "RRGGBB", "#RRGGBBAA" or "r,g,b"
// and reported as lowercase "#rrggbb" hex strings.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - File I/O errors during image or font loading
//   - Unparseable colors
//   - Unsupported output formats when saving
//   - Invalid overlay requests (wrapping the overlay package sentinels)
package imaging
