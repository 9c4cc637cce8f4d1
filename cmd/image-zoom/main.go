package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-zoom/internal/demo"
	"github.com/ironsheep/image-zoom/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	mode := ""
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "--version", "-v", "version":
		fmt.Printf("image-zoom %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printHelp()
		return
	case "", "mcp":
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", mode)
		printHelp()
		os.Exit(2)
	}

	// Configure logging to stderr (stdout carries banners or MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := demo.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("image-zoom v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if mode == "mcp" {
		srv := server.New()
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if _, err := demo.NewRunner(cfg, os.Stdout).Run(); err != nil {
		log.Fatalf("Zoom failed: %v", err)
	}
}

func printHelp() {
	fmt.Println("image-zoom - 2x image zoom by replication and interpolation")
	fmt.Println()
	fmt.Println("Usage: image-zoom [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none)           Zoom the input image and write the results")
	fmt.Println("  mcp              Serve the zoom tools over MCP (stdin/stdout)")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_ZOOM_INPUT=a.png,b.jpg    Input candidates, first is primary")
	fmt.Println("  IMAGE_ZOOM_OUTPUT_DIR=out       Directory for output images")
	fmt.Println("  IMAGE_ZOOM_NO_FIGURE=1          Skip comparison and difference figures")
	fmt.Println("  IMAGE_ZOOM_LOG_LEVEL=debug      Enable debug logging")
}
