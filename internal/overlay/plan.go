package overlay

import (
	"fmt"
	"image"
)

// Request describes one overlay: text lines placed against an optional ROI.
type Request struct {
	// Lines are rendered top to bottom. Empty lines are measured like any
	// other string; an empty slice draws no text block.
	Lines []string

	// ROI is the region the anchor refers to. Nil means the whole canvas.
	ROI *Region

	Anchor Anchor
	Style  Style

	// DrawBox draws the ROI outline. It has no effect when ROI is nil.
	DrawBox bool
}

// Result is a fully resolved overlay.
type Result struct {
	Block     Block
	Placement Placement

	// Commands are ready to be applied in order with Render.
	Commands []Command
}

// Plan validates req, sizes the text block, resolves its anchor on a canvas of
// the given size and emits the draw commands.
//
// Commands follow req.Style.Order. With OrderBoxFirst (the default) the ROI
// box is drawn first, then the text background, then the text, so the text
// block stays readable where it overlaps the box. OrderBoxLast draws the box
// over the text block.
//
// Either every command is returned or an error is returned before any is
// produced.
func Plan(canvas image.Point, m Measurer, req Request) (*Result, error) {
	if err := req.Style.Validate(); err != nil {
		return nil, err
	}
	if req.ROI != nil {
		if err := req.ROI.Validate(); err != nil {
			return nil, err
		}
	}

	block := TextBlockSize(m, req.Lines, req.Style)
	placement, err := ResolveAnchor(canvas, req.ROI, req.Anchor, block.Size(), req.Style.Margin)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor: %w", err)
	}

	var text, box []Command
	if len(req.Lines) > 0 {
		text = TextCommands(placement.TopLeft, block, req.Lines, req.Style)
	}
	if req.ROI != nil && req.DrawBox {
		box = BoxCommands(*req.ROI, req.Style)
	}

	cmds := make([]Command, 0, len(text)+len(box))
	if req.Style.Order == OrderBoxLast {
		cmds = append(append(cmds, text...), box...)
	} else {
		cmds = append(append(cmds, box...), text...)
	}

	return &Result{Block: block, Placement: placement, Commands: cmds}, nil
}

// TextCommands emits the background fill (when s.Background is set) followed by
// one Text command per line.
//
// Lines start at topLeft inset by s.Padding. Each line's baseline sits its own
// height below the running offset, which then advances by that height plus
// s.LineSpacing.
func TextCommands(topLeft image.Point, block Block, lines []string, s Style) []Command {
	cmds := make([]Command, 0, len(lines)+1)

	if s.Background != nil {
		rect := image.Rectangle{Min: topLeft, Max: topLeft.Add(block.Size())}
		cmds = append(cmds, FillRect{
			Rect:   rect,
			Radius: clampRadius(s.CornerRadius, rect),
			Color:  *s.Background,
		})
	}

	x := topLeft.X + s.Padding
	y := topLeft.Y + s.Padding
	for i, line := range lines {
		h := 0
		if i < len(block.Lines) {
			h = block.Lines[i].Y
		}
		cmds = append(cmds, Text{
			Origin:    image.Pt(x, y+h),
			Text:      line,
			Scale:     s.FontScale,
			Color:     s.FontColor,
			Thickness: s.Thickness,
		})
		y += h + s.LineSpacing
	}

	return cmds
}

// BoxCommands outlines roi with the box style. A zero BoxRadius yields a single
// StrokeRect; otherwise the outline is decomposed by RoundedRectangle.
func BoxCommands(roi Region, s Style) []Command {
	if s.BoxRadius == 0 {
		return []Command{StrokeRect{Rect: roi.Rect(), Color: s.BoxColor, Thickness: s.BoxThickness}}
	}
	return RoundedRectangle(roi.Rect(), s.BoxRadius, s.BoxColor, s.BoxThickness)
}
