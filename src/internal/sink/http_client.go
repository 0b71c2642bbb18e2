// FILE: src/internal/sink/http_client.go
package sink

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"loglayout/src/internal/config"
	"loglayout/src/internal/core"
	"loglayout/src/internal/version"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// HTTPClientSink forwards rendered lines to a remote HTTP endpoint.
// Lines are batched into newline-delimited JSON request bodies.
type HTTPClientSink struct {
	// Configuration
	config *config.HTTPClientSinkOptions

	// Network
	client *fasthttp.Client

	// Application
	input  chan []byte
	logger *log.Logger

	// Runtime
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	// Batching
	batch   [][]byte
	batchMu sync.Mutex

	// Statistics
	totalProcessed    atomic.Uint64
	totalBatches      atomic.Uint64
	failedBatches     atomic.Uint64
	lastProcessed     atomic.Value // time.Time
	lastBatchSent     atomic.Value // time.Time
	activeConnections atomic.Int64
}

// NewHTTPClientSink creates a new HTTP forwarding sink.
func NewHTTPClientSink(opts *config.HTTPClientSinkOptions, logger *log.Logger) (*HTTPClientSink, error) {
	if opts == nil {
		return nil, fmt.Errorf("HTTP client sink options cannot be nil")
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.BatchDelayMS <= 0 {
		opts.BatchDelayMS = 1000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 2.0
	}
	if opts.RetryDelayMS <= 0 {
		opts.RetryDelayMS = 500
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = core.DefaultSinkBufferSize
	}

	h := &HTTPClientSink{
		config:    opts,
		input:     make(chan []byte, bufferSize),
		batch:     make([][]byte, 0, opts.BatchSize),
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
	}
	h.lastProcessed.Store(time.Time{})
	h.lastBatchSent.Store(time.Time{})

	// Create fasthttp client
	h.client = &fasthttp.Client{
		MaxConnsPerHost:               10,
		MaxIdleConnDuration:           10 * time.Second,
		ReadTimeout:                   time.Duration(opts.Timeout) * time.Second,
		WriteTimeout:                  time.Duration(opts.Timeout) * time.Second,
		DisableHeaderNamesNormalizing: true,
	}

	if strings.HasPrefix(opts.URL, "https://") && opts.InsecureSkipVerify {
		h.client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return h, nil
}

// Input returns the channel for sending rendered lines.
func (h *HTTPClientSink) Input() chan<- []byte {
	return h.input
}

// Start begins the processing and batching loops.
func (h *HTTPClientSink) Start(ctx context.Context) error {
	h.wg.Add(2)
	go h.processLoop(ctx)
	go h.batchTimer(ctx)

	h.logger.Info("msg", "HTTP client sink started",
		"component", "http_client_sink",
		"url", h.config.URL,
		"batch_size", h.config.BatchSize,
		"batch_delay_ms", h.config.BatchDelayMS,
		"auth", h.config.JWTSecret != "")
	return nil
}

// Stop gracefully shuts down the sink, sending any remaining batched lines.
func (h *HTTPClientSink) Stop() {
	h.logger.Info("msg", "Stopping HTTP client sink")
	close(h.done)
	h.wg.Wait()

	// Send any remaining batched lines
	h.batchMu.Lock()
	if len(h.batch) > 0 {
		batch := h.batch
		h.batch = make([][]byte, 0, h.config.BatchSize)
		h.batchMu.Unlock()
		h.sendBatch(batch)
	} else {
		h.batchMu.Unlock()
	}

	h.logger.Info("msg", "HTTP client sink stopped",
		"total_processed", h.totalProcessed.Load(),
		"total_batches", h.totalBatches.Load(),
		"failed_batches", h.failedBatches.Load())
}

// GetStats returns the sink's statistics.
func (h *HTTPClientSink) GetStats() SinkStats {
	lastProc, _ := h.lastProcessed.Load().(time.Time)
	lastBatch, _ := h.lastBatchSent.Load().(time.Time)

	h.batchMu.Lock()
	pendingLines := len(h.batch)
	h.batchMu.Unlock()

	return SinkStats{
		Type:              "http_client",
		TotalProcessed:    h.totalProcessed.Load(),
		ActiveConnections: h.activeConnections.Load(),
		StartTime:         h.startTime,
		LastProcessed:     lastProc,
		Details: map[string]any{
			"url":             h.config.URL,
			"batch_size":      h.config.BatchSize,
			"pending_lines":   pendingLines,
			"total_batches":   h.totalBatches.Load(),
			"failed_batches":  h.failedBatches.Load(),
			"last_batch_sent": lastBatch,
		},
	}
}

// processLoop collects incoming lines into a batch.
func (h *HTTPClientSink) processLoop(ctx context.Context) {
	defer h.wg.Done()

	for {
		select {
		case line, ok := <-h.input:
			if !ok {
				return
			}

			h.totalProcessed.Add(1)
			h.lastProcessed.Store(time.Now())

			// Add to batch
			h.batchMu.Lock()
			h.batch = append(h.batch, line)

			// Check if batch is full
			if int64(len(h.batch)) >= h.config.BatchSize {
				batch := h.batch
				h.batch = make([][]byte, 0, h.config.BatchSize)
				h.batchMu.Unlock()

				// Send batch in background
				go h.sendBatch(batch)
			} else {
				h.batchMu.Unlock()
			}

		case <-ctx.Done():
			return
		case <-h.done:
			return
		}
	}
}

// batchTimer periodically triggers sending of the current batch.
func (h *HTTPClientSink) batchTimer(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(time.Duration(h.config.BatchDelayMS) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.batchMu.Lock()
			if len(h.batch) > 0 {
				batch := h.batch
				h.batch = make([][]byte, 0, h.config.BatchSize)
				h.batchMu.Unlock()

				// Send batch in background
				go h.sendBatch(batch)
			} else {
				h.batchMu.Unlock()
			}

		case <-ctx.Done():
			return
		case <-h.done:
			return
		}
	}
}

// bearerToken signs a short-lived HS256 token when a shared secret is
// configured.
func (h *HTTPClientSink) bearerToken() (string, error) {
	expiry := h.config.JWTExpirySeconds
	if expiry <= 0 {
		expiry = 60
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "loglayout",
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(expiry) * time.Second).Unix(),
	})
	return token.SignedString([]byte(h.config.JWTSecret))
}

// sendBatch sends one batch of lines to the remote endpoint with retry
// logic. Lines already carry trailing newlines, so the body is NDJSON.
func (h *HTTPClientSink) sendBatch(batch [][]byte) {
	h.activeConnections.Add(1)
	defer h.activeConnections.Add(-1)

	h.totalBatches.Add(1)
	h.lastBatchSent.Store(time.Now())

	body := bytes.Join(batch, nil)

	var lastErr error
	retryDelay := time.Duration(h.config.RetryDelayMS) * time.Millisecond

	for attempt := int64(0); attempt <= h.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Wait before retry
			time.Sleep(retryDelay)

			// Calculate new delay with overflow protection
			newDelay := time.Duration(float64(retryDelay) * h.config.RetryBackoff)
			timeout := time.Duration(h.config.Timeout) * time.Second
			if newDelay > timeout || newDelay < retryDelay {
				retryDelay = timeout
			} else {
				retryDelay = newDelay
			}
		}

		// Acquire resources inside loop, release immediately after use
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()

		req.SetRequestURI(h.config.URL)
		req.Header.SetMethod("POST")
		req.Header.SetContentType("application/x-ndjson")
		req.SetBody(body)
		req.Header.Set("User-Agent", fmt.Sprintf("loglayout/%s", version.Short()))

		if h.config.JWTSecret != "" {
			token, err := h.bearerToken()
			if err != nil {
				fasthttp.ReleaseRequest(req)
				fasthttp.ReleaseResponse(resp)
				h.logger.Error("msg", "Failed to sign bearer token",
					"component", "http_client_sink",
					"error", err)
				h.failedBatches.Add(1)
				return
			}
			req.Header.Set("Authorization", "Bearer "+token)
		}

		// Send request
		err := h.client.DoTimeout(req, resp, time.Duration(h.config.Timeout)*time.Second)

		// Capture response before releasing
		statusCode := resp.StatusCode()
		var responseBody []byte
		if len(resp.Body()) > 0 {
			responseBody = make([]byte, len(resp.Body()))
			copy(responseBody, resp.Body())
		}

		// Release immediately, not deferred
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)

		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			h.logger.Warn("msg", "HTTP request failed",
				"component", "http_client_sink",
				"attempt", attempt+1,
				"max_retries", h.config.MaxRetries,
				"error", err)
			continue
		}

		// Check response status
		if statusCode >= 200 && statusCode < 300 {
			h.logger.Debug("msg", "Batch sent successfully",
				"component", "http_client_sink",
				"batch_size", len(batch),
				"status_code", statusCode,
				"attempt", attempt+1)
			return
		}

		// Non-2xx status
		lastErr = fmt.Errorf("server returned status %d: %s", statusCode, responseBody)

		// Don't retry on 4xx errors (client errors)
		if statusCode >= 400 && statusCode < 500 {
			h.logger.Error("msg", "Batch rejected by server",
				"component", "http_client_sink",
				"status_code", statusCode,
				"response", string(responseBody),
				"batch_size", len(batch))
			h.failedBatches.Add(1)
			return
		}

		h.logger.Warn("msg", "Server returned error status",
			"component", "http_client_sink",
			"attempt", attempt+1,
			"status_code", statusCode,
			"response", string(responseBody))
	}

	// All retries exhausted
	h.logger.Error("msg", "Failed to send batch after all retries",
		"component", "http_client_sink",
		"batch_size", len(batch),
		"retries", h.config.MaxRetries,
		"last_error", lastErr)
	h.failedBatches.Add(1)
}
