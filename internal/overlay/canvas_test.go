package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// fixedMeasurer measures every rune as 10x20 pixels at scale 1.0.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, scale float64, thickness int) (int, int) {
	w := int(math.Ceil(float64(len([]rune(text)))*10*scale)) + thickness - 1
	h := int(math.Ceil(20*scale)) + thickness - 1
	return w, h
}

// recordingCanvas captures every call as a short string.
type recordingCanvas struct {
	fixedMeasurer
	calls []string
}

func (r *recordingCanvas) FillRect(rect image.Rectangle, radius int, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v r=%d", rect, radius))
}

func (r *recordingCanvas) StrokeRect(rect image.Rectangle, c color.Color, thickness int) {
	r.calls = append(r.calls, fmt.Sprintf("stroke %v t=%d", rect, thickness))
}

func (r *recordingCanvas) DrawLine(from, to image.Point, c color.Color, thickness int) {
	r.calls = append(r.calls, fmt.Sprintf("line %v-%v", from, to))
}

func (r *recordingCanvas) DrawText(origin image.Point, text string, scale float64, c color.Color, thickness int) {
	r.calls = append(r.calls, fmt.Sprintf("text %v %q", origin, text))
}

// arcCanvas additionally supports native arcs.
type arcCanvas struct {
	recordingCanvas
}

func (a *arcCanvas) DrawArc(center image.Point, radius int, start, end float64, c color.Color, thickness int) {
	a.calls = append(a.calls, fmt.Sprintf("arc %v r=%d %g-%g", center, radius, start, end))
}
