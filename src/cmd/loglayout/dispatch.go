// FILE: src/cmd/loglayout/dispatch.go
package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"loglayout/src/internal/core"
	"loglayout/src/internal/flow"
	"loglayout/src/internal/render"
	"loglayout/src/internal/sink"
)

// dispatcher reads raw messages, renders them, and fans the lines out to
// all sinks. The only producer in this binary is stdin.
type dispatcher struct {
	loggerName string
	renderer   *render.Renderer
	vars       *core.VariableStore
	limiter    *flow.RateLimiter
	sinks      []sink.Sink
}

// run consumes input until EOF or context cancellation.
func (d *dispatcher) run(ctx context.Context, input io.Reader) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		message := scanner.Text()
		if message == "" {
			continue
		}

		if !d.limiter.Allow() {
			continue
		}

		level, message := splitLevel(message)
		event := core.LogEvent{
			Time:       time.Now(),
			Level:      level,
			LoggerName: d.loggerName,
			Message:    message,
		}

		line, err := d.renderer.Render(event, d.vars)
		if err != nil {
			logger.Error("msg", "Failed to render event",
				"component", "dispatcher",
				"error", err)
			continue
		}

		for _, s := range d.sinks {
			select {
			case s.Input() <- line:
			default:
				// Sink buffer full, drop rather than stall the reader
				logger.Warn("msg", "Sink buffer full, line dropped",
					"component", "dispatcher",
					"sink", s.GetStats().Type)
			}
		}
	}

	return scanner.Err()
}

// splitLevel peels an optional leading "LEVEL:" token off a raw message.
func splitLevel(message string) (core.Level, string) {
	token, rest, ok := strings.Cut(message, ":")
	if !ok {
		return core.LevelInfo, message
	}

	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL":
		return core.ParseLevel(token), strings.TrimSpace(rest)
	default:
		return core.LevelInfo, message
	}
}
