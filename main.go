package main

import (
	"fmt"
	"os"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server with the
	// scheduled nightly imports
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]

	switch command {
	case "import":
		cfg := config.NewConfig()
		entrypoint.RunImport(cfg, Version)

	case "import-media":
		cfg := config.NewConfig()
		entrypoint.RunMediaImport(cfg, Version)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve         Start the HTTP server and scheduled imports (default)\n")
	fmt.Fprintf(os.Stderr, "  import        Run every import job once and exit\n")
	fmt.Fprintf(os.Stderr, "  import-media  Run only the media update import once and exit\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from environment variables.\n")
}
