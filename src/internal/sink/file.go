// FILE: src/internal/sink/file.go
package sink

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"

	"github.com/lixenwraith/log"
)

// FileSink writes rendered lines to files with rotation. Rotation and
// retention are delegated to an internal log.Logger instance used purely
// as a managed file writer.
type FileSink struct {
	input     chan []byte
	writer    *log.Logger // Internal logger instance for file writing
	done      chan struct{}
	startTime time.Time
	logger    *log.Logger // Application logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewFileSink creates a file sink writing into the configured directory
func NewFileSink(opts *config.FileSinkOptions, logger *log.Logger) (*FileSink, error) {
	directory := opts.Directory
	if directory == "" {
		directory = "./"
		logger.Warn("msg", "No directory provided, current directory will be used")
	}

	name := opts.Name
	if name == "" {
		name = "loglayout.output"
		logger.Warn("msg", fmt.Sprintf("No filename provided, %s will be used", name))
	}

	// Create configuration for the internal log writer
	writerConfig := log.DefaultConfig()
	writerConfig.Directory = directory
	writerConfig.Name = name
	writerConfig.EnableConsole = false // File only
	writerConfig.ShowTimestamp = false // Lines carry their own timestamps
	writerConfig.ShowLevel = false     // Lines carry their own levels

	if opts.MaxSizeMB > 0 {
		writerConfig.MaxSizeKB = opts.MaxSizeMB * 1000
	}
	if opts.MaxTotalSizeMB > 0 {
		writerConfig.MaxTotalSizeKB = opts.MaxTotalSizeMB * 1000
	}
	if opts.RetentionHours > 0 {
		writerConfig.RetentionPeriodHrs = opts.RetentionHours
	}

	// Create internal logger for file writing
	writer := log.NewLogger()
	if err := writer.ApplyConfig(writerConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize file writer: %w", err)
	}
	if err := writer.Start(); err != nil {
		return nil, fmt.Errorf("failed to start file writer: %w", err)
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = core.DefaultSinkBufferSize
	}

	fs := &FileSink{
		input:     make(chan []byte, bufferSize),
		writer:    writer,
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
	}
	fs.lastProcessed.Store(time.Time{})

	return fs, nil
}

func (fs *FileSink) Input() chan<- []byte {
	return fs.input
}

func (fs *FileSink) Start(ctx context.Context) error {
	go fs.processLoop(ctx)
	fs.logger.Info("msg", "File sink started",
		"component", "file_sink")
	return nil
}

func (fs *FileSink) Stop() {
	fs.logger.Info("msg", "Stopping file sink")
	close(fs.done)

	// Shutdown the writer with timeout
	if err := fs.writer.Shutdown(2 * time.Second); err != nil {
		fs.logger.Warn("msg", "File writer shutdown failed",
			"component", "file_sink",
			"error", err)
	}
	fs.logger.Info("msg", "File sink stopped")
}

func (fs *FileSink) GetStats() SinkStats {
	lastProc, _ := fs.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "file",
		TotalProcessed: fs.totalProcessed.Load(),
		StartTime:      fs.startTime,
		LastProcessed:  lastProc,
	}
}

func (fs *FileSink) processLoop(ctx context.Context) {
	for {
		select {
		case line, ok := <-fs.input:
			if !ok {
				return
			}

			fs.totalProcessed.Add(1)
			fs.lastProcessed.Store(time.Now())

			// Strip new line, writer adds it
			fs.writer.Message(string(bytes.TrimSuffix(line, []byte{'\n'})))

		case <-ctx.Done():
			return
		case <-fs.done:
			return
		}
	}
}
