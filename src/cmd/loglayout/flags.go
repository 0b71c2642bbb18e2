// FILE: src/cmd/loglayout/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	// General flags
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")
	quiet       = flag.Bool("quiet", false, "Suppress all diagnostic output")

	// Logging flags
	logOutput = flag.String("log-output", "", "Log output: file, stdout, stderr, both, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logDir    = flag.String("log-dir", "", "Log directory (when using file output)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "loglayout - JSON Log Line Renderer\n\n")
	fmt.Fprintf(os.Stderr, "Reads log messages from stdin, renders each as one JSON line with\n")
	fmt.Fprintf(os.Stderr, "configured template properties, and delivers it to the configured sinks.\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress all diagnostic output\n")

	fmt.Fprintf(os.Stderr, "\nLogging:\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tLog output: file, stdout, stderr, both, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tLog level: debug, info, warn, error (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-dir string\n\tLog directory (when using file output)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Render stdin to stdout with defaults\n")
	fmt.Fprintf(os.Stderr, "  tail -f app.log | %s\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Run with custom config and debug diagnostics\n")
	fmt.Fprintf(os.Stderr, "  %s --config /etc/loglayout.toml --log-level debug\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGLAYOUT_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGLAYOUT_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if *logOutput != "" {
		switch *logOutput {
		case "file", "stdout", "stderr", "both", "none":
		default:
			return fmt.Errorf("invalid log-output: %s", *logOutput)
		}
	}

	if *logLevel != "" {
		switch *logLevel {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log-level: %s", *logLevel)
		}
	}

	return nil
}
