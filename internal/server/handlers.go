package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/ironsheep/image-overlay-mcp/internal/config"
	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_overlay_text").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if s.debug {
		log.Printf("Tool call: %s", name)
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Overlay Operations
	case "image_overlay_anchors":
		return s.handleOverlayAnchors()
	case "image_overlay_plan":
		return s.handleOverlayPlan(args)
	case "image_overlay_text":
		return s.handleOverlayText(args)
	case "image_draw_box":
		return s.handleDrawBox(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating missing arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Overlay Handlers ===

type anchorsResult struct {
	Anchors []string `json:"anchors"`
	Default string   `json:"default"`
}

func (s *Server) handleOverlayAnchors() (interface{}, error) {
	return &anchorsResult{
		Anchors: overlay.AnchorNames(),
		Default: s.anchor.String(),
	}, nil
}

// overlayArgs are shared by the overlay tools. Lines may be given as a list
// or as a single newline-separated Text.
type overlayArgs struct {
	Path string `json:"path"`

	// Width and Height size the canvas for image_overlay_plan without a path.
	Width  int `json:"width"`
	Height int `json:"height"`

	Lines   []string          `json:"lines"`
	Text    string            `json:"text"`
	ROI     *overlay.Region   `json:"roi"`
	Anchor  string            `json:"anchor"`
	DrawBox *bool             `json:"draw_box"`
	Style   config.StylePatch `json:"style"`

	OutputPath string `json:"output_path"`
}

// request converts the arguments into an overlay request over the server's
// default style and anchor.
func (s *Server) request(a *overlayArgs) (overlay.Request, error) {
	style, err := a.Style.Apply(s.style)
	if err != nil {
		return overlay.Request{}, err
	}

	anchor := s.anchor
	if a.Anchor != "" {
		if anchor, err = overlay.ParseAnchor(a.Anchor); err != nil {
			return overlay.Request{}, err
		}
	}

	lines := a.Lines
	if len(lines) == 0 && a.Text != "" {
		lines = strings.Split(a.Text, "\n")
	}

	drawBox := a.ROI != nil && s.drawBox
	if a.DrawBox != nil {
		drawBox = *a.DrawBox
	}

	return overlay.Request{
		Lines:   lines,
		ROI:     a.ROI,
		Anchor:  anchor,
		Style:   style,
		DrawBox: drawBox,
	}, nil
}

type planResult struct {
	Block     blockView     `json:"block"`
	Placement placementView `json:"placement"`
	Commands  []commandView `json:"commands"`
}

func (s *Server) handleOverlayPlan(args json.RawMessage) (interface{}, error) {
	var a overlayArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	size := image.Pt(a.Width, a.Height)
	if a.Path != "" {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		size = image.Pt(img.Bounds().Dx(), img.Bounds().Dy())
	} else if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: path or positive width and height required", overlay.ErrInvalidParameter)
	}

	req, err := s.request(&a)
	if err != nil {
		return nil, err
	}
	res, err := s.annotator.Plan(size, req)
	if err != nil {
		return nil, err
	}
	s.logPlacement("image_overlay_plan", res.Placement)

	return &planResult{
		Block:     newBlockView(res.Block),
		Placement: newPlacementView(res.Placement),
		Commands:  newCommandViews(res.Commands),
	}, nil
}

type annotateResult struct {
	*imaging.EncodedImage
	Placement  *placementView `json:"placement,omitempty"`
	FontColor  string         `json:"font_color,omitempty"`
	OutputPath string         `json:"output_path,omitempty"`
}

func (s *Server) handleOverlayText(args json.RawMessage) (interface{}, error) {
	var a overlayArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	req, err := s.request(&a)
	if err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: lines or text required", overlay.ErrInvalidParameter)
	}

	result, err := s.annotate(&a, req, a.Style.AutoFontColor())
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Server) handleDrawBox(args json.RawMessage) (interface{}, error) {
	var a overlayArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.ROI == nil {
		return nil, fmt.Errorf("%w: roi required", overlay.ErrInvalidRegion)
	}
	req, err := s.request(&a)
	if err != nil {
		return nil, err
	}
	req.Lines = nil
	req.DrawBox = true

	result, err := s.annotate(&a, req, false)
	if err != nil {
		return nil, err
	}
	result.Placement = nil
	result.FontColor = ""
	return result, nil
}

// annotate loads a.Path, draws req on a copy, encodes it and optionally saves
// it to a.OutputPath.
func (s *Server) annotate(a *overlayArgs, req overlay.Request, autoColor bool) (*annotateResult, error) {
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	ann, err := s.annotator.Annotate(img, req, autoColor)
	if err != nil {
		return nil, err
	}
	s.logPlacement("annotate", ann.Result.Placement)

	enc, err := imaging.EncodePNG(ann.Image)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.Save(a.OutputPath, ann.Image, s.jpegQuality); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
	}

	placement := newPlacementView(ann.Result.Placement)
	return &annotateResult{
		EncodedImage: enc,
		Placement:    &placement,
		FontColor:    imaging.ToHex(ann.FontColor),
		OutputPath:   a.OutputPath,
	}, nil
}

func (s *Server) logPlacement(op string, p overlay.Placement) {
	if !s.debug {
		return
	}
	log.Printf("%s: anchor %s -> %s at %v (adapted=%v clamped=%v)",
		op, p.Requested, p.Anchor, p.TopLeft, p.Adapted, p.Clamped)
}
