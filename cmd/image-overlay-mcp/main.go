package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ridge/must/v2"

	"github.com/ironsheep/image-overlay-mcp/internal/config"
	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
	"github.com/ironsheep/image-overlay-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-overlay-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-overlay-mcp - MCP server for anchored text and box overlays")
			fmt.Println()
			fmt.Println("Usage: image-overlay-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Printf("  %s=debug    Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=<path>        TrueType font (default: Go Regular)\n", config.EnvFont)
			fmt.Printf("  %s=<path>       YAML style preset\n", config.EnvStyle)
			fmt.Printf("  %s=<anchor>    Default anchor (default: inside_top_left)\n", config.EnvAnchor)
			fmt.Printf("  %s=<1-100> JPEG quality for .jpg output (default: 95)\n", config.EnvQuality)
			fmt.Printf("  %s=false     Do not outline the ROI unless draw_box is set\n", config.EnvDrawBox)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	config.Load()
	cfg := must.OK1(config.FromEnv())
	if cfg.Debug() {
		log.Printf("Image Overlay MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	font := must.OK1(imaging.LoadFont(cfg.FontPath))
	style := must.OK1(config.LoadStyle(cfg.StylePath))

	srv := server.New(server.Options{
		Annotator:   imaging.NewAnnotator(font),
		Style:       style,
		Anchor:      cfg.DefaultAnchor,
		DrawBox:     cfg.DrawBox,
		JPEGQuality: cfg.JPEGQuality,
		Debug:       cfg.Debug(),
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
