// Package server implements the MCP (Model Context Protocol) server for image
// annotation tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Overlay Operations:
//   - image_overlay_anchors: List anchor names and the configured default
//   - image_overlay_plan: Resolve placement and draw commands without drawing
//   - image_overlay_text: Draw anchored text (and the ROI box) on a copy
//   - image_draw_box: Draw a rounded ROI box on a copy
//
// Overlay tools accept a "style" object whose fields override the server's
// default style one by one. Annotated images are returned as base64 PNG and
// can also be written to "output_path".
//
// # Image Caching
//
// Source images are cached by path and never drawn on. Saving to a path
// evicts that path from the cache so that later calls read the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Options{
//	    Annotator: imaging.NewAnnotator(font),
//	    Style:     overlay.DefaultStyle(),
//	    Anchor:    overlay.InsideTopLeft,
//	    DrawBox:   true,
//	})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
