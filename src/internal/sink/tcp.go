// FILE: src/internal/sink/tcp.go
package sink

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/lixenwraith/log/compat"
	"github.com/panjf2000/gnet/v2"
)

// TCPSink streams rendered lines to connected TCP clients.
type TCPSink struct {
	// Configuration
	config *config.TCPSinkOptions

	// Network
	server   *tcpServer
	engine   *gnet.Engine
	engineMu sync.Mutex

	// Application
	input  chan []byte
	logger *log.Logger

	// Runtime
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	// Statistics
	activeConns    atomic.Int64
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
	writeErrors    atomic.Uint64
}

// NewTCPSink creates a new TCP streaming sink.
func NewTCPSink(opts *config.TCPSinkOptions, logger *log.Logger) (*TCPSink, error) {
	if opts == nil {
		return nil, fmt.Errorf("TCP sink options cannot be nil")
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = core.DefaultSinkBufferSize
	}

	t := &TCPSink{
		config:    opts,
		input:     make(chan []byte, bufferSize),
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
	}
	t.lastProcessed.Store(time.Time{})

	return t, nil
}

// Input returns the channel for sending rendered lines.
func (t *TCPSink) Input() chan<- []byte {
	return t.input
}

// Start initializes the TCP server and begins the broadcast loop.
func (t *TCPSink) Start(ctx context.Context) error {
	t.server = &tcpServer{
		sink:    t,
		clients: make(map[gnet.Conn]struct{}),
	}

	// Start line broadcast loop
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.broadcastLoop(ctx)
	}()

	addr := fmt.Sprintf("tcp://%s:%d", t.config.Host, t.config.Port)

	// Create a gnet adapter using the existing logger instance
	gnetLogger := compat.NewGnetAdapter(t.logger)

	opts := []gnet.Option{
		gnet.WithLogger(gnetLogger),
		gnet.WithMulticore(true),
		gnet.WithReusePort(true),
	}

	// Start gnet server
	errChan := make(chan error, 1)
	go func() {
		t.logger.Info("msg", "Starting TCP server",
			"component", "tcp_sink",
			"port", t.config.Port)

		err := gnet.Run(t.server, addr, opts...)
		if err != nil {
			t.logger.Error("msg", "TCP server failed",
				"component", "tcp_sink",
				"port", t.config.Port,
				"error", err)
		}
		errChan <- err
	}()

	// Monitor context for shutdown
	go func() {
		<-ctx.Done()
		t.stopEngine()
	}()

	// Wait briefly for server to start or fail
	select {
	case err := <-errChan:
		// Server failed immediately
		close(t.done)
		t.wg.Wait()
		return err
	case <-time.After(100 * time.Millisecond):
		t.logger.Info("msg", "TCP server started", "port", t.config.Port)
		return nil
	}
}

// Stop gracefully shuts down the TCP server.
func (t *TCPSink) Stop() {
	t.logger.Info("msg", "Stopping TCP sink")

	// Signal broadcast loop to stop
	close(t.done)

	t.stopEngine()

	// Wait for broadcast loop to finish
	t.wg.Wait()

	t.logger.Info("msg", "TCP sink stopped")
}

func (t *TCPSink) stopEngine() {
	t.engineMu.Lock()
	engine := t.engine
	t.engineMu.Unlock()

	if engine != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		(*engine).Stop(ctx)
	}
}

// GetStats returns the sink's statistics.
func (t *TCPSink) GetStats() SinkStats {
	lastProc, _ := t.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:              "tcp",
		TotalProcessed:    t.totalProcessed.Load(),
		ActiveConnections: t.activeConns.Load(),
		StartTime:         t.startTime,
		LastProcessed:     lastProc,
		Details: map[string]any{
			"port":         t.config.Port,
			"buffer_size":  t.config.BufferSize,
			"write_errors": t.writeErrors.Load(),
		},
	}
}

// broadcastLoop fans rendered lines out to all connected clients.
func (t *TCPSink) broadcastLoop(ctx context.Context) {
	var ticker *time.Ticker
	var tickerChan <-chan time.Time

	if t.config.Heartbeat != nil && t.config.Heartbeat.Enabled {
		interval := t.config.Heartbeat.IntervalMS
		if interval <= 0 {
			interval = 30000
		}
		ticker = time.NewTicker(time.Duration(interval) * time.Millisecond)
		tickerChan = ticker.C
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.input:
			if !ok {
				return
			}
			t.totalProcessed.Add(1)
			t.lastProcessed.Store(time.Now())
			t.broadcastData(line)

		case <-tickerChan:
			// Comment line keeps idle connections alive without breaking
			// line-oriented consumers
			heartbeat := fmt.Sprintf(": heartbeat %s\n", time.Now().UTC().Format(core.TimestampLayout))
			t.broadcastData([]byte(heartbeat))

		case <-t.done:
			return
		}
	}
}

func (t *TCPSink) broadcastData(data []byte) {
	t.server.mu.RLock()
	conns := make([]gnet.Conn, 0, len(t.server.clients))
	for c := range t.server.clients {
		conns = append(conns, c)
	}
	t.server.mu.RUnlock()

	for _, c := range conns {
		if err := c.AsyncWrite(data, nil); err != nil {
			t.writeErrors.Add(1)
			t.logger.Debug("msg", "TCP write failed",
				"component", "tcp_sink",
				"remote_addr", c.RemoteAddr().String(),
				"error", err)
		}
	}
}

// tcpServer implements the gnet.EventHandler interface for the TCP sink.
type tcpServer struct {
	gnet.BuiltinEventEngine
	sink    *TCPSink
	clients map[gnet.Conn]struct{}
	mu      sync.RWMutex
}

// OnBoot is called when the server starts.
func (s *tcpServer) OnBoot(eng gnet.Engine) gnet.Action {
	// Store engine reference for shutdown
	s.sink.engineMu.Lock()
	s.sink.engine = &eng
	s.sink.engineMu.Unlock()

	s.sink.logger.Debug("msg", "TCP server booted",
		"component", "tcp_sink",
		"port", s.sink.config.Port)
	return gnet.None
}

// OnOpen is called when a new connection is established.
func (s *tcpServer) OnOpen(c gnet.Conn) (out []byte, action gnet.Action) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	newCount := s.sink.activeConns.Add(1)
	s.sink.logger.Debug("msg", "TCP connection opened",
		"component", "tcp_sink",
		"remote_addr", c.RemoteAddr().String(),
		"active_connections", newCount)

	return nil, gnet.None
}

// OnClose is called when a connection is closed.
func (s *tcpServer) OnClose(c gnet.Conn, err error) gnet.Action {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	newCount := s.sink.activeConns.Add(-1)
	s.sink.logger.Debug("msg", "TCP connection closed",
		"component", "tcp_sink",
		"remote_addr", c.RemoteAddr().String(),
		"active_connections", newCount,
		"error", err)
	return gnet.None
}

// OnTraffic is called when data is received from a connection. The sink
// is broadcast-only; inbound bytes are discarded.
func (s *tcpServer) OnTraffic(c gnet.Conn) gnet.Action {
	_, _ = c.Next(-1)
	return gnet.None
}
