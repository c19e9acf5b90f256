package overlay

import "image"

// Block is the padded rectangle holding every text line.
type Block struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Lines holds the measured size of each line, in input order.
	Lines []image.Point `json:"-"`
}

// Size returns the block dimensions as a point.
func (b Block) Size() image.Point {
	return image.Pt(b.Width, b.Height)
}

// Empty reports whether the block has no area to draw.
func (b Block) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// TextBlockSize measures lines and returns the size of the padded block.
//
// The width is the widest line plus padding on both sides. The height is the
// sum of the line heights, LineSpacing between consecutive lines, and padding
// above and below. An empty line list yields a zero block.
func TextBlockSize(m Measurer, lines []string, s Style) Block {
	if len(lines) == 0 {
		return Block{}
	}

	sizes := make([]image.Point, len(lines))
	maxWidth, totalHeight := 0, 0
	for i, line := range lines {
		w, h := m.MeasureText(line, s.FontScale, s.Thickness)
		sizes[i] = image.Pt(w, h)
		maxWidth = max(maxWidth, w)
		totalHeight += h
	}

	return Block{
		Width:  maxWidth + 2*s.Padding,
		Height: totalHeight + (len(lines)-1)*s.LineSpacing + 2*s.Padding,
		Lines:  sizes,
	}
}
