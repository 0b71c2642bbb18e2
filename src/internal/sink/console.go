// FILE: src/internal/sink/console.go
package sink

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"

	"github.com/lixenwraith/log"
)

// ConsoleSink writes rendered lines to stdout or stderr
type ConsoleSink struct {
	input     chan []byte
	target    string
	output    io.Writer
	done      chan struct{}
	startTime time.Time
	logger    *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewConsoleSink creates a console sink for the configured target
func NewConsoleSink(opts *config.ConsoleSinkOptions, logger *log.Logger) *ConsoleSink {
	target := opts.Target
	if target == "" {
		target = "stdout"
	}

	var output io.Writer = os.Stdout
	if target == "stderr" {
		output = os.Stderr
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = core.DefaultSinkBufferSize
	}

	s := &ConsoleSink{
		input:     make(chan []byte, bufferSize),
		target:    target,
		output:    output,
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
	}
	s.lastProcessed.Store(time.Time{})

	return s
}

func (s *ConsoleSink) Input() chan<- []byte {
	return s.input
}

func (s *ConsoleSink) Start(ctx context.Context) error {
	go s.processLoop(ctx)
	s.logger.Info("msg", "Console sink started",
		"component", "console_sink",
		"target", s.target)
	return nil
}

func (s *ConsoleSink) Stop() {
	s.logger.Info("msg", "Stopping console sink")
	close(s.done)
	s.logger.Info("msg", "Console sink stopped")
}

func (s *ConsoleSink) GetStats() SinkStats {
	lastProc, _ := s.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "console",
		TotalProcessed: s.totalProcessed.Load(),
		StartTime:      s.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"target": s.target,
		},
	}
}

func (s *ConsoleSink) processLoop(ctx context.Context) {
	for {
		select {
		case line, ok := <-s.input:
			if !ok {
				return
			}

			s.totalProcessed.Add(1)
			s.lastProcessed.Store(time.Now())

			if _, err := s.output.Write(line); err != nil {
				s.logger.Error("msg", "Failed to write line to console",
					"component", "console_sink",
					"error", err)
			}

		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}
