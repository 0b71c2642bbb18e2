// FILE: src/internal/sink/memory_test.go
package sink

import (
	"context"
	"fmt"
	"testing"
	"time"

	"loglayout/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestMemorySink_RetainsRecentLines(t *testing.T) {
	s := NewMemorySink(&config.MemorySinkOptions{Capacity: 3}, newTestLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	for i := 1; i <= 5; i++ {
		s.Input() <- []byte(fmt.Sprintf("line%d\n", i))
	}

	require.Eventually(t, func() bool {
		return s.GetStats().TotalProcessed == 5
	}, time.Second, 10*time.Millisecond)

	lines := s.Lines()
	require.Len(t, lines, 3, "Ring should retain only the newest capacity lines")
	assert.Equal(t, "line3\n", string(lines[0]))
	assert.Equal(t, "line4\n", string(lines[1]))
	assert.Equal(t, "line5\n", string(lines[2]))
}

func TestMemorySink_Stats(t *testing.T) {
	s := NewMemorySink(&config.MemorySinkOptions{Capacity: 10}, newTestLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	s.Input() <- []byte("one\n")

	require.Eventually(t, func() bool {
		return s.GetStats().TotalProcessed == 1
	}, time.Second, 10*time.Millisecond)

	stats := s.GetStats()
	assert.Equal(t, "memory", stats.Type)
	assert.Equal(t, 1, stats.Details["retained"])
	assert.False(t, stats.LastProcessed.IsZero())
}

func TestConsoleSink_Construction(t *testing.T) {
	t.Run("DefaultTarget", func(t *testing.T) {
		s := NewConsoleSink(&config.ConsoleSinkOptions{}, newTestLogger())
		assert.Equal(t, "console", s.GetStats().Type)
		assert.Equal(t, "stdout", s.GetStats().Details["target"])
	})

	t.Run("StderrTarget", func(t *testing.T) {
		s := NewConsoleSink(&config.ConsoleSinkOptions{Target: "stderr"}, newTestLogger())
		assert.Equal(t, "stderr", s.GetStats().Details["target"])
	})
}
