// FILE: src/internal/format/format.go
package format

import (
	"fmt"

	"github.com/lixenwraith/log"
)

// Field is one ordered key/value pair of an output line. Values are
// always emitted as JSON strings regardless of their logical type.
type Field struct {
	Key   string
	Value string
}

// Formatter defines the interface for assembling ordered fields into one
// output line.
type Formatter interface {
	// Format takes ordered fields and returns the line as a byte slice,
	// newline terminated.
	Format(fields []Field) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a new Formatter based on the configured name.
func New(name string, logger *log.Logger) (Formatter, error) {
	// Default to json if no format specified
	if name == "" {
		name = "json"
	}

	switch name {
	case "json":
		return NewJSONFormatter(logger), nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
