// FILE: src/cmd/loglayout/bootstrap.go
package main

import (
	"fmt"
	"strings"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"
	"loglayout/src/internal/format"
	"loglayout/src/internal/render"
	"loglayout/src/internal/sink"
	"loglayout/src/internal/template"

	"github.com/lixenwraith/log"
)

// initializeLogger sets up the diagnostic logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	var configArgs []string

	if *quiet {
		// In quiet mode, disable ALL diagnostic output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=false",
			"level=255")

		return logger.InitWithDefaults(configArgs...)
	}

	logCfg := cfg.Logging
	if logCfg == nil {
		logCfg = config.DefaultLogConfig()
	}

	// CLI overrides
	output := logCfg.Output
	if *logOutput != "" {
		output = *logOutput
	}
	level := logCfg.Level
	if *logLevel != "" {
		level = *logLevel
	}

	levelValue, err := parseLogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	// Configure based on output mode
	switch output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_stdout=false")
		configureFileLogging(&configArgs, logCfg)

	case "both":
		configArgs = append(configArgs, "enable_stdout=true", "stdout_target=stderr")
		configureFileLogging(&configArgs, logCfg)

	default:
		return fmt.Errorf("invalid log output mode: %s", output)
	}

	return logger.InitWithDefaults(configArgs...)
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, logCfg *config.LogConfig) {
	if logCfg.File == nil {
		return
	}

	directory := logCfg.File.Directory
	if *logDir != "" {
		directory = *logDir
	}

	*configArgs = append(*configArgs,
		fmt.Sprintf("directory=%s", directory),
		fmt.Sprintf("name=%s", logCfg.File.Name),
		fmt.Sprintf("max_size_mb=%d", logCfg.File.MaxSizeMB))

	if logCfg.File.RetentionHours > 0 {
		*configArgs = append(*configArgs,
			fmt.Sprintf("retention_period_hrs=%.1f", logCfg.File.RetentionHours))
	}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// buildRenderer assembles the renderer from configured properties
func buildRenderer(cfg *config.Config) (*render.Renderer, error) {
	props := core.NewPropertyList(len(cfg.Properties))
	for _, p := range cfg.Properties {
		props.Add(p.Name, p.Template)
	}

	formatter, err := format.New("json", logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	return render.New(props, template.NewExpander(), formatter, nil, logger), nil
}

// buildSinks creates all enabled sinks from configuration
func buildSinks(cfg *config.Config) ([]sink.Sink, error) {
	var sinks []sink.Sink

	if c := cfg.Sinks.Console; c != nil && c.Enabled {
		sinks = append(sinks, sink.NewConsoleSink(c, logger))
	}

	if c := cfg.Sinks.File; c != nil && c.Enabled {
		fs, err := sink.NewFileSink(c, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create file sink: %w", err)
		}
		sinks = append(sinks, fs)
	}

	if c := cfg.Sinks.Memory; c != nil && c.Enabled {
		sinks = append(sinks, sink.NewMemorySink(c, logger))
	}

	if c := cfg.Sinks.HTTPClient; c != nil && c.Enabled {
		hs, err := sink.NewHTTPClientSink(c, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client sink: %w", err)
		}
		sinks = append(sinks, hs)
	}

	if c := cfg.Sinks.TCPServer; c != nil && c.Enabled {
		ts, err := sink.NewTCPSink(c, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create TCP sink: %w", err)
		}
		sinks = append(sinks, ts)
	}

	if len(sinks) == 0 {
		return nil, fmt.Errorf("no sinks enabled")
	}

	return sinks, nil
}
