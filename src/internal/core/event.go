// FILE: src/internal/core/event.go
package core

import (
	"strings"
	"time"
)

// Severity of a log event, carried as its textual form
type Level string

const (
	LevelTrace Level = "Trace"
	LevelDebug Level = "Debug"
	LevelInfo  Level = "Info"
	LevelWarn  Level = "Warn"
	LevelError Level = "Error"
	LevelFatal Level = "Fatal"
)

// ParseLevel maps a case-insensitive level token to its canonical form.
// Unknown tokens fall back to Info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Represents a single log event handed to the renderer.
// Owned by the caller for the duration of one render call.
type LogEvent struct {
	Time       time.Time
	Level      Level
	LoggerName string
	Message    string
}
