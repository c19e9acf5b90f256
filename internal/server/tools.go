package server

import (
	"strings"

	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func roiProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Region of interest in pixels. Omit to anchor against the whole image.",
		"properties": map[string]interface{}{
			"x":      map[string]interface{}{"type": "integer"},
			"y":      map[string]interface{}{"type": "integer"},
			"width":  map[string]interface{}{"type": "integer"},
			"height": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x", "y", "width", "height"},
	}
}

func anchorProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        overlay.AnchorNames(),
		"description": "Where to place the text block relative to the ROI. Outside anchors fall back to their inside counterpart when the block would leave the image.",
	}
}

func styleProperty() map[string]interface{} {
	colorProp := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "string", "description": desc}
	}
	intProp := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "integer", "minimum": 0, "description": desc}
	}

	return map[string]interface{}{
		"type":        "object",
		"description": "Style overrides. Unset fields use the server defaults.",
		"properties": map[string]interface{}{
			"font_scale":    map[string]interface{}{"type": "number", "description": "Text size multiplier (1.0 = 22px)"},
			"font_color":    colorProp(`Text color as "#RRGGBB", "r,g,b" or "auto" for black/white by contrast`),
			"thickness":     map[string]interface{}{"type": "integer", "minimum": 1, "description": "Text stroke thickness"},
			"background":    colorProp(`Text background color, or "none"`),
			"padding":       intProp("Space between text and background edge"),
			"line_spacing":  intProp("Vertical gap between lines"),
			"margin":        intProp("Gap between text block and ROI edge"),
			"corner_radius": intProp("Background corner radius"),
			"box_color":     colorProp("ROI box color"),
			"box_thickness": map[string]interface{}{"type": "integer", "minimum": 1, "description": "ROI box line thickness"},
			"box_radius":    intProp("ROI box corner radius (0 = square corners)"),
			"order": map[string]interface{}{
				"type":        "string",
				"enum":        []string{overlay.OrderBoxFirst.String(), overlay.OrderBoxLast.String()},
				"description": "Whether the ROI box is drawn under or over the text block",
			},
		},
	}
}

// overlayProperties are shared by image_overlay_plan and image_overlay_text.
func overlayProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"lines": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Text lines, rendered top to bottom",
		},
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Alternative to lines: newline-separated text",
		},
		"roi":    roiProperty(),
		"anchor": anchorProperty(),
		"draw_box": map[string]interface{}{
			"type":        "boolean",
			"description": "Outline the ROI. When unset, the ROI is outlined unless the server disables it.",
		},
		"style": styleProperty(),
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also save the result (.png, .jpg, .jpeg or .bmp)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	planProps := overlayProperties()
	planProps["width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Canvas width when no path is given",
	}
	planProps["height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Canvas height when no path is given",
	}

	textProps := overlayProperties()
	textProps["output_path"] = outputPathProperty()

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Overlay Operations
		{
			Name:        "image_overlay_anchors",
			Description: "List the anchor names accepted by the overlay tools: " + strings.Join(overlay.AnchorNames(), ", ") + ".",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_overlay_plan",
			Description: "Compute where a text block would be placed and the draw commands that render it, without drawing. Give either path or width and height.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": planProps,
			},
		},
		{
			Name:        "image_overlay_text",
			Description: "Draw text lines on a copy of an image, anchored to a region of interest, and return it as base64-encoded PNG with the resolved placement.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": textProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_draw_box",
			Description: "Outline a region of interest with a rounded rectangle on a copy of an image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"roi":         roiProperty(),
					"style":       styleProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "roi"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
