package imaging

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// BaseFontSize is the pixel size of text rendered at font scale 1.0.
const BaseFontSize = 22.0

// LoadFont parses the TrueType font at path. An empty path returns the
// embedded Go Regular font.
func LoadFont(path string) (*truetype.Font, error) {
	if path == "" {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded font: %w", err)
		}
		return f, nil
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// Measurer measures text with faces derived from a single TrueType font.
//
// It implements overlay.Measurer. Faces are cached per size, so a Measurer
// must not be shared between goroutines.
type Measurer struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewMeasurer returns a Measurer for f.
func NewMeasurer(f *truetype.Font) *Measurer {
	return &Measurer{
		font:  f,
		faces: make(map[float64]font.Face),
	}
}

// Face returns the face used for the given font scale.
func (m *Measurer) Face(scale float64) font.Face {
	size := BaseFontSize * scale
	if face, ok := m.faces[size]; ok {
		return face
	}
	// Unhinted so that advances grow linearly with size.
	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[size] = face
	return face
}

// MeasureText returns the advance width and ascent of text, rounded up, each
// widened by thickness-1 pixels.
func (m *Measurer) MeasureText(text string, scale float64, thickness int) (int, int) {
	face := m.Face(scale)
	extra := max(0, thickness-1)
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Ascent.Ceil()
	return width + extra, height + extra
}
