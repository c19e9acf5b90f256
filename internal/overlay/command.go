package overlay

import (
	"image"
	"image/color"
	"math"
)

// Command is one drawing operation produced by the placer.
//
// The set of implementations is closed: FillRect, StrokeRect, Line, Arc and
// Text. Commands are plain values; Apply hands them to a Canvas.
type Command interface {
	// Op names the operation, e.g. "fill_rect".
	Op() string

	// Apply draws the command on c.
	Apply(c Canvas)
}

// FillRect fills a rectangle, rounding its corners when Radius > 0.
type FillRect struct {
	Rect   image.Rectangle `json:"rect"`
	Radius int             `json:"radius"`
	Color  color.RGBA      `json:"color"`
}

func (f FillRect) Op() string { return "fill_rect" }

func (f FillRect) Apply(c Canvas) { c.FillRect(f.Rect, f.Radius, f.Color) }

// StrokeRect outlines a rectangle with square corners.
type StrokeRect struct {
	Rect      image.Rectangle `json:"rect"`
	Color     color.RGBA      `json:"color"`
	Thickness int             `json:"thickness"`
}

func (s StrokeRect) Op() string { return "stroke_rect" }

func (s StrokeRect) Apply(c Canvas) { c.StrokeRect(s.Rect, s.Color, s.Thickness) }

// Line is a straight segment between two points.
type Line struct {
	From      image.Point `json:"from"`
	To        image.Point `json:"to"`
	Color     color.RGBA  `json:"color"`
	Thickness int         `json:"thickness"`
}

func (l Line) Op() string { return "line" }

func (l Line) Apply(c Canvas) { c.DrawLine(l.From, l.To, l.Color, l.Thickness) }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	d := l.To.Sub(l.From)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Arc is a circular arc from Start to End degrees, clockwise in image space.
type Arc struct {
	Center    image.Point `json:"center"`
	Radius    int         `json:"radius"`
	Start     float64     `json:"start"`
	End       float64     `json:"end"`
	Color     color.RGBA  `json:"color"`
	Thickness int         `json:"thickness"`
}

func (a Arc) Op() string { return "arc" }

// Apply draws the arc natively when c is an ArcDrawer and as Segments otherwise.
func (a Arc) Apply(c Canvas) {
	if ad, ok := c.(ArcDrawer); ok {
		ad.DrawArc(a.Center, a.Radius, a.Start, a.End, a.Color, a.Thickness)
		return
	}
	for _, seg := range a.Segments() {
		seg.Apply(c)
	}
}

// segmentsPerQuarter is the line count used to approximate a 90 degree arc.
const segmentsPerQuarter = 8

// Segments approximates the arc with straight lines whose endpoints lie on the
// circle. A zero radius or zero sweep yields no segments.
func (a Arc) Segments() []Line {
	sweep := a.End - a.Start
	if a.Radius <= 0 || sweep == 0 {
		return nil
	}

	n := int(math.Ceil(math.Abs(sweep) / 90 * segmentsPerQuarter))
	lines := make([]Line, 0, n)
	prev := a.pointAt(a.Start)
	for i := 1; i <= n; i++ {
		next := a.pointAt(a.Start + sweep*float64(i)/float64(n))
		lines = append(lines, Line{From: prev, To: next, Color: a.Color, Thickness: a.Thickness})
		prev = next
	}
	return lines
}

func (a Arc) pointAt(deg float64) image.Point {
	rad := deg * math.Pi / 180
	r := float64(a.Radius)
	return image.Pt(
		a.Center.X+int(math.Round(r*math.Cos(rad))),
		a.Center.Y+int(math.Round(r*math.Sin(rad))),
	)
}

// Text draws one line of text with its baseline starting at Origin.
type Text struct {
	Origin    image.Point `json:"origin"`
	Text      string      `json:"text"`
	Scale     float64     `json:"scale"`
	Color     color.RGBA  `json:"color"`
	Thickness int         `json:"thickness"`
}

func (t Text) Op() string { return "text" }

func (t Text) Apply(c Canvas) { c.DrawText(t.Origin, t.Text, t.Scale, t.Color, t.Thickness) }

// Render applies cmds to c in order.
func Render(c Canvas, cmds []Command) {
	for _, cmd := range cmds {
		cmd.Apply(c)
	}
}
