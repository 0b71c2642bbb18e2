// FILE: src/cmd/loglayout/dispatch_test.go
package main

import (
	"testing"

	"loglayout/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestSplitLevel(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		level   core.Level
		message string
	}{
		{
			name:    "ErrorPrefix",
			input:   "ERROR: disk full",
			level:   core.LevelError,
			message: "disk full",
		},
		{
			name:    "LowercasePrefix",
			input:   "warn: retrying",
			level:   core.LevelWarn,
			message: "retrying",
		},
		{
			name:    "NoPrefix",
			input:   "plain message",
			level:   core.LevelInfo,
			message: "plain message",
		},
		{
			name:    "ColonButNotALevel",
			input:   "db: connection ok",
			level:   core.LevelInfo,
			message: "db: connection ok",
		},
		{
			name:    "TimestampLikeMessage",
			input:   "12:30:00 something happened",
			level:   core.LevelInfo,
			message: "12:30:00 something happened",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, message := splitLevel(tc.input)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.message, message)
		})
	}
}
