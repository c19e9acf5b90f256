// Package config reads server settings from the environment and style presets
// from YAML files.
package config

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel = "IMAGE_OVERLAY_LOG_LEVEL"
	EnvFont     = "IMAGE_OVERLAY_FONT"
	EnvStyle    = "IMAGE_OVERLAY_STYLE"
	EnvAnchor   = "IMAGE_OVERLAY_ANCHOR"
	EnvQuality  = "IMAGE_OVERLAY_JPEG_QUALITY"
	EnvDrawBox  = "IMAGE_OVERLAY_DRAW_BOX"
)

// Config holds the process-wide settings.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string

	// FontPath is a TrueType font file. Empty selects the embedded font.
	FontPath string

	// StylePath is a YAML style preset. Empty selects the default style.
	StylePath string

	// DefaultAnchor is used by tool calls that name no anchor.
	DefaultAnchor overlay.Anchor

	// JPEGQuality is used when an output path ends in .jpg or .jpeg.
	JPEGQuality int

	// DrawBox is the draw_box default for text overlays given an ROI.
	DrawBox bool
}

// FromEnv builds a Config from the environment. Call Load first to pick up a
// .env file.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:  strings.ToLower(StringVariable(EnvLogLevel, "info")),
		FontPath:  StringVariable(EnvFont, ""),
		StylePath: StringVariable(EnvStyle, ""),
		DrawBox:   BoolVariable(EnvDrawBox, true),
	}

	cfg.JPEGQuality = IntVariable(EnvQuality, imaging.DefaultJPEGQuality)
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("invalid %s: %d is outside 1-100", EnvQuality, cfg.JPEGQuality)
	}

	anchor, err := overlay.ParseAnchor(StringVariable(EnvAnchor, overlay.InsideTopLeft.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvAnchor, err)
	}
	cfg.DefaultAnchor = anchor

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}
