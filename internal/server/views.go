package server

import (
	"image"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// The views below give tool results a flat JSON shape with hex colors.

type rectView struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func newRectView(r image.Rectangle) rectView {
	return rectView{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

type pointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func newPointView(p image.Point) pointView {
	return pointView{X: p.X, Y: p.Y}
}

type blockView struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func newBlockView(b overlay.Block) blockView {
	return blockView{Width: b.Width, Height: b.Height}
}

type placementView struct {
	rectView
	Requested overlay.Anchor `json:"requested_anchor"`
	Anchor    overlay.Anchor `json:"anchor"`
	Adapted   bool           `json:"adapted"`
	Clamped   bool           `json:"clamped"`
}

func newPlacementView(p overlay.Placement) placementView {
	return placementView{
		rectView:  newRectView(p.Rect()),
		Requested: p.Requested,
		Anchor:    p.Anchor,
		Adapted:   p.Adapted,
		Clamped:   p.Clamped,
	}
}

// commandView is one draw command as {"op": ..., "args": {...}}.
type commandView struct {
	Op   string                 `json:"op"`
	Args map[string]interface{} `json:"args"`
}

func newCommandViews(cmds []overlay.Command) []commandView {
	views := make([]commandView, 0, len(cmds))
	for _, cmd := range cmds {
		views = append(views, newCommandView(cmd))
	}
	return views
}

func newCommandView(cmd overlay.Command) commandView {
	v := commandView{Op: cmd.Op()}

	switch c := cmd.(type) {
	case overlay.FillRect:
		v.Args = map[string]interface{}{
			"rect":   newRectView(c.Rect),
			"radius": c.Radius,
			"color":  imaging.ToHex(c.Color),
		}
	case overlay.StrokeRect:
		v.Args = map[string]interface{}{
			"rect":      newRectView(c.Rect),
			"color":     imaging.ToHex(c.Color),
			"thickness": c.Thickness,
		}
	case overlay.Line:
		v.Args = map[string]interface{}{
			"from":      newPointView(c.From),
			"to":        newPointView(c.To),
			"color":     imaging.ToHex(c.Color),
			"thickness": c.Thickness,
		}
	case overlay.Arc:
		v.Args = map[string]interface{}{
			"center":    newPointView(c.Center),
			"radius":    c.Radius,
			"start":     c.Start,
			"end":       c.End,
			"color":     imaging.ToHex(c.Color),
			"thickness": c.Thickness,
		}
	case overlay.Text:
		v.Args = map[string]interface{}{
			"origin":    newPointView(c.Origin),
			"text":      c.Text,
			"scale":     c.Scale,
			"color":     imaging.ToHex(c.Color),
			"thickness": c.Thickness,
		}
	}

	return v
}
