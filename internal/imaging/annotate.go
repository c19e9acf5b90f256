package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"

	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// Annotation is an annotated copy of an image plus the plan that produced it.
type Annotation struct {
	Image  image.Image
	Result *overlay.Result

	// FontColor is the text color actually used. It differs from the request
	// when automatic text color was asked for.
	FontColor color.RGBA
}

// Annotator renders overlay requests onto images with one font.
//
// It is safe for concurrent use.
type Annotator struct {
	font *truetype.Font
}

// NewAnnotator returns an Annotator drawing text with f.
func NewAnnotator(f *truetype.Font) *Annotator {
	return &Annotator{font: f}
}

// Plan resolves req for an image of the given size without drawing anything.
func (a *Annotator) Plan(size image.Point, req overlay.Request) (*overlay.Result, error) {
	return overlay.Plan(size, NewMeasurer(a.font), req)
}

// Annotate draws req onto a copy of img and returns it.
//
// When autoColor is set, the text color is chosen to contrast with the text
// background, or with the average image color under the text block when the
// style has no background. The source image is never modified.
func (a *Annotator) Annotate(img image.Image, req overlay.Request, autoColor bool) (*Annotation, error) {
	canvas := NewCanvas(img, a.font)

	res, err := overlay.Plan(canvas.Size(), canvas, req)
	if err != nil {
		return nil, fmt.Errorf("failed to plan overlay: %w", err)
	}

	fontColor := req.Style.FontColor
	if autoColor && len(req.Lines) > 0 {
		bg := AverageColor(canvas.Image(), res.Placement.Rect())
		if req.Style.Background != nil {
			bg = *req.Style.Background
		}
		fontColor = ContrastColor(bg)
		recolorText(res.Commands, fontColor)
	}

	overlay.Render(canvas, res.Commands)

	return &Annotation{
		Image:     canvas.Image(),
		Result:    res,
		FontColor: fontColor,
	}, nil
}

// recolorText sets the color of every Text command in cmds.
func recolorText(cmds []overlay.Command, c color.RGBA) {
	for i, cmd := range cmds {
		if t, ok := cmd.(overlay.Text); ok {
			t.Color = c
			cmds[i] = t
		}
	}
}
