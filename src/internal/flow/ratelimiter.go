// FILE: src/internal/flow/ratelimiter.go
package flow

import (
	"sync/atomic"

	"loglayout/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// RateLimiter enforces a ceiling on rendered lines flowing to sinks.
// Lines over the limit are dropped and counted.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  *log.Logger

	// Statistics
	droppedCount atomic.Uint64
}

// NewRateLimiter creates a limiter from configuration. Returns nil when
// no limit is configured; a nil limiter allows everything.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *log.Logger) *RateLimiter {
	if cfg == nil || cfg.Rate <= 0 {
		return nil
	}

	burst := int(cfg.Burst)
	if burst <= 0 {
		burst = int(cfg.Rate) // Default burst to rate
	}

	logger.Debug("msg", "Rate limiter created",
		"component", "rate_limiter",
		"rate", cfg.Rate,
		"burst", burst)

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), burst),
		logger:  logger,
	}
}

// Allow reports whether one line may pass.
func (l *RateLimiter) Allow() bool {
	if l == nil {
		return true
	}
	if l.limiter.Allow() {
		return true
	}
	l.droppedCount.Add(1)
	return false
}

// Dropped returns the number of lines rejected so far.
func (l *RateLimiter) Dropped() uint64 {
	if l == nil {
		return 0
	}
	return l.droppedCount.Load()
}
