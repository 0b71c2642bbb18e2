// FILE: src/cmd/loglayout/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"
	"loglayout/src/internal/flow"
	"loglayout/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Set config file environment if specified
	if *configFile != "" {
		os.Setenv("LOGLAYOUT_CONFIG_FILE", *configFile)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := initializeLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Shutdown(2 * time.Second)

	logger.Info("msg", "loglayout starting",
		"version", version.String(),
		"config_file", *configFile,
		"logger_name", cfg.LoggerName,
		"property_count", len(cfg.Properties))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renderer, err := buildRenderer(cfg)
	if err != nil {
		logger.Error("msg", "Failed to build renderer", "error", err)
		os.Exit(1)
	}

	sinks, err := buildSinks(cfg)
	if err != nil {
		logger.Error("msg", "Failed to build sinks", "error", err)
		os.Exit(1)
	}

	for i, s := range sinks {
		if err := s.Start(ctx); err != nil {
			logger.Error("msg", "Failed to start sink",
				"sink_index", i,
				"error", err)
			os.Exit(1)
		}
	}

	d := &dispatcher{
		loggerName: cfg.LoggerName,
		renderer:   renderer,
		vars:       core.NewVariableStore(cfg.Variables),
		limiter:    flow.NewRateLimiter(cfg.RateLimit, logger),
		sinks:      sinks,
	}

	// Read stdin until EOF in the background
	readDone := make(chan error, 1)
	go func() {
		readDone <- d.run(ctx, os.Stdin)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("msg", "Shutdown signal received, starting graceful shutdown...",
			"signal", sig.String())
	case err := <-readDone:
		if err != nil && err != context.Canceled {
			logger.Error("msg", "Input reader failed", "error", err)
		} else {
			logger.Info("msg", "Input exhausted, shutting down")
		}
	}

	cancel()

	// Stop sinks, letting each flush what it holds
	for _, s := range sinks {
		s.Stop()
	}

	stats := renderer.GetStats()
	logger.Info("msg", "loglayout stopped",
		"events_rendered", stats.TotalRendered,
		"property_faults", stats.PropertyFaults,
		"lines_rate_limited", d.limiter.Dropped())
}
