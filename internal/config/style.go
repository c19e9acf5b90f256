package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// Special color values accepted by StylePatch.
const (
	// ColorAuto as FontColor picks black or white against the text background.
	ColorAuto = "auto"

	// ColorNone as Background disables the text background.
	ColorNone = "none"
)

// StylePatch is a partial overlay.Style. Nil fields leave the base style
// untouched. It is read from YAML presets and from tool call arguments.
type StylePatch struct {
	FontScale    *float64 `yaml:"font_scale" json:"font_scale,omitempty"`
	FontColor    *string  `yaml:"font_color" json:"font_color,omitempty"`
	Thickness    *int     `yaml:"thickness" json:"thickness,omitempty"`
	Background   *string  `yaml:"background" json:"background,omitempty"`
	Padding      *int     `yaml:"padding" json:"padding,omitempty"`
	LineSpacing  *int     `yaml:"line_spacing" json:"line_spacing,omitempty"`
	Margin       *int     `yaml:"margin" json:"margin,omitempty"`
	CornerRadius *int     `yaml:"corner_radius" json:"corner_radius,omitempty"`
	BoxColor     *string  `yaml:"box_color" json:"box_color,omitempty"`
	BoxThickness *int     `yaml:"box_thickness" json:"box_thickness,omitempty"`
	BoxRadius    *int     `yaml:"box_radius" json:"box_radius,omitempty"`
	Order        *string  `yaml:"order" json:"order,omitempty"`
}

// AutoFontColor reports whether the patch asks for a contrasting text color.
func (p StylePatch) AutoFontColor() bool {
	return p.FontColor != nil && strings.EqualFold(strings.TrimSpace(*p.FontColor), ColorAuto)
}

// Apply returns base with every set field of p replaced, validated.
// An "auto" font color keeps the base color; see AutoFontColor.
func (p StylePatch) Apply(base overlay.Style) (overlay.Style, error) {
	s := base

	if p.FontScale != nil {
		s.FontScale = *p.FontScale
	}
	if p.FontColor != nil && !p.AutoFontColor() {
		c, err := imaging.ParseColor(*p.FontColor)
		if err != nil {
			return s, fmt.Errorf("%w: font_color: %v", overlay.ErrInvalidParameter, err)
		}
		s.FontColor = c
	}
	if p.Thickness != nil {
		s.Thickness = *p.Thickness
	}
	if p.Background != nil {
		if strings.EqualFold(strings.TrimSpace(*p.Background), ColorNone) {
			s.Background = nil
		} else {
			c, err := imaging.ParseColor(*p.Background)
			if err != nil {
				return s, fmt.Errorf("%w: background: %v", overlay.ErrInvalidParameter, err)
			}
			s.Background = &c
		}
	}
	setInt(&s.Padding, p.Padding)
	setInt(&s.LineSpacing, p.LineSpacing)
	setInt(&s.Margin, p.Margin)
	setInt(&s.CornerRadius, p.CornerRadius)
	if p.BoxColor != nil {
		c, err := imaging.ParseColor(*p.BoxColor)
		if err != nil {
			return s, fmt.Errorf("%w: box_color: %v", overlay.ErrInvalidParameter, err)
		}
		s.BoxColor = c
	}
	setInt(&s.BoxThickness, p.BoxThickness)
	setInt(&s.BoxRadius, p.BoxRadius)
	if p.Order != nil {
		o, err := overlay.ParseDrawOrder(*p.Order)
		if err != nil {
			return s, err
		}
		s.Order = o
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// LoadStyle reads a YAML style preset and applies it to overlay.DefaultStyle.
// An empty path returns the default style.
func LoadStyle(path string) (overlay.Style, error) {
	if path == "" {
		return overlay.DefaultStyle(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return overlay.Style{}, fmt.Errorf("read style %s: %w", path, err)
	}

	var p StylePatch
	if err := yaml.Unmarshal(data, &p); err != nil {
		return overlay.Style{}, fmt.Errorf("parse style %s: %w", path, err)
	}
	if p.AutoFontColor() {
		return overlay.Style{}, fmt.Errorf("validate style %s: %w: font_color %q is only valid per call",
			path, overlay.ErrInvalidParameter, ColorAuto)
	}

	s, err := p.Apply(overlay.DefaultStyle())
	if err != nil {
		return overlay.Style{}, fmt.Errorf("validate style %s: %w", path, err)
	}
	return s, nil
}
