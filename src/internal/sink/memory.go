// FILE: src/internal/sink/memory.go
package sink

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"

	"github.com/lixenwraith/log"
)

// MemorySink retains the most recent rendered lines in a ring buffer.
// Used for status queries and tests.
type MemorySink struct {
	input     chan []byte
	done      chan struct{}
	startTime time.Time
	logger    *log.Logger

	mu       sync.RWMutex
	lines    [][]byte
	next     int
	wrapped  bool
	capacity int

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewMemorySink creates a memory sink retaining up to capacity lines
func NewMemorySink(opts *config.MemorySinkOptions, logger *log.Logger) *MemorySink {
	capacity := int(opts.Capacity)
	if capacity <= 0 {
		capacity = 100
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = core.DefaultSinkBufferSize
	}

	s := &MemorySink{
		input:     make(chan []byte, bufferSize),
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
		lines:     make([][]byte, capacity),
		capacity:  capacity,
	}
	s.lastProcessed.Store(time.Time{})

	return s
}

func (s *MemorySink) Input() chan<- []byte {
	return s.input
}

func (s *MemorySink) Start(ctx context.Context) error {
	go s.processLoop(ctx)
	s.logger.Info("msg", "Memory sink started",
		"component", "memory_sink",
		"capacity", s.capacity)
	return nil
}

func (s *MemorySink) Stop() {
	s.logger.Info("msg", "Stopping memory sink")
	close(s.done)
	s.logger.Info("msg", "Memory sink stopped")
}

func (s *MemorySink) GetStats() SinkStats {
	lastProc, _ := s.lastProcessed.Load().(time.Time)

	s.mu.RLock()
	retained := s.next
	if s.wrapped {
		retained = s.capacity
	}
	s.mu.RUnlock()

	return SinkStats{
		Type:           "memory",
		TotalProcessed: s.totalProcessed.Load(),
		StartTime:      s.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"capacity": s.capacity,
			"retained": retained,
		},
	}
}

// Lines returns the retained lines, oldest first. The returned slices
// are copies and safe to hold.
func (s *MemorySink) Lines() [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out [][]byte
	appendLine := func(line []byte) {
		if line == nil {
			return
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		out = append(out, cp)
	}

	if s.wrapped {
		for i := s.next; i < s.capacity; i++ {
			appendLine(s.lines[i])
		}
	}
	for i := 0; i < s.next; i++ {
		appendLine(s.lines[i])
	}
	return out
}

func (s *MemorySink) processLoop(ctx context.Context) {
	for {
		select {
		case line, ok := <-s.input:
			if !ok {
				return
			}

			s.totalProcessed.Add(1)
			s.lastProcessed.Store(time.Now())

			s.mu.Lock()
			s.lines[s.next] = line
			s.next++
			if s.next == s.capacity {
				s.next = 0
				s.wrapped = true
			}
			s.mu.Unlock()

		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}
