// FILE: src/internal/sink/sink.go
package sink

import (
	"context"
	"time"
)

// Sink represents an output destination for rendered lines
type Sink interface {
	// Input returns the channel for sending rendered lines to this sink
	Input() chan<- []byte

	// Start begins processing lines
	Start(ctx context.Context) error

	// Stop gracefully shuts down the sink
	Stop()

	// GetStats returns sink statistics
	GetStats() SinkStats
}

// SinkStats contains statistics about a sink
type SinkStats struct {
	Type              string
	TotalProcessed    uint64
	ActiveConnections int64
	StartTime         time.Time
	LastProcessed     time.Time
	Details           map[string]any
}
