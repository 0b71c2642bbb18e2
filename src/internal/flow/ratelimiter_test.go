// FILE: src/internal/flow/ratelimiter_test.go
package flow

import (
	"testing"

	"loglayout/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	logger := log.NewLogger()

	t.Run("NilConfigDisablesLimiting", func(t *testing.T) {
		l := NewRateLimiter(nil, logger)
		assert.Nil(t, l)
		assert.True(t, l.Allow(), "Nil limiter must allow everything")
		assert.Equal(t, uint64(0), l.Dropped())
	})

	t.Run("ZeroRateDisablesLimiting", func(t *testing.T) {
		l := NewRateLimiter(&config.RateLimitConfig{Rate: 0}, logger)
		assert.Nil(t, l)
	})

	t.Run("BurstExhaustion", func(t *testing.T) {
		l := NewRateLimiter(&config.RateLimitConfig{Rate: 1, Burst: 3}, logger)
		require.NotNil(t, l)

		allowed := 0
		for i := 0; i < 10; i++ {
			if l.Allow() {
				allowed++
			}
		}

		assert.Equal(t, 3, allowed, "Only the burst should pass immediately")
		assert.Equal(t, uint64(7), l.Dropped())
	})

	t.Run("BurstDefaultsToRate", func(t *testing.T) {
		l := NewRateLimiter(&config.RateLimitConfig{Rate: 5}, logger)
		require.NotNil(t, l)

		allowed := 0
		for i := 0; i < 10; i++ {
			if l.Allow() {
				allowed++
			}
		}
		assert.Equal(t, 5, allowed)
	})
}
