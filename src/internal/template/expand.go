// FILE: src/internal/template/expand.go
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Expander is the built-in Evaluator for the ${fact} / ${facility:name}
// marker dialect. Process facts are captured once at construction so
// repeated renders do not hit the OS.
type Expander struct {
	machineName string
	processID   string
	processName string
}

// NewExpander creates an expander with ambient process facts resolved.
func NewExpander() *Expander {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return &Expander{
		machineName: host,
		processID:   strconv.Itoa(os.Getpid()),
		processName: filepath.Base(os.Args[0]),
	}
}

// Evaluate scans the template left to right, substituting markers.
// An unknown variable expands to empty text; an unknown fact or a
// malformed marker fails the evaluation.
func (e *Expander) Evaluate(template string, rc Context) (string, error) {
	// Fast path: no markers at all
	if !strings.Contains(template, "${") {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:i])
		rest = rest[i+2:]

		j := strings.IndexByte(rest, '}')
		if j < 0 {
			return "", &EvalError{
				Kind:    FaultBadMarker,
				Message: "unterminated marker in template",
			}
		}
		marker := rest[:j]
		rest = rest[j+1:]

		text, err := e.resolve(marker, rc)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
}

func (e *Expander) resolve(marker string, rc Context) (string, error) {
	if marker == "" {
		return "", &EvalError{
			Kind:    FaultBadMarker,
			Message: "empty marker",
		}
	}

	// ${facility:name} form
	if facility, name, ok := strings.Cut(marker, ":"); ok {
		switch facility {
		case "var":
			// Missing variables are not an error, they expand to nothing
			v, _ := rc.Variables.Get(name)
			return v, nil
		case "env":
			return os.Getenv(name), nil
		default:
			return "", &EvalError{
				Kind:    FaultUnknownFact,
				Message: fmt.Sprintf("unknown facility '%s'", facility),
			}
		}
	}

	// ${fact} form
	switch marker {
	case "machinename", "hostname":
		return e.machineName, nil
	case "processid":
		return e.processID, nil
	case "processname":
		return e.processName, nil
	case "level":
		return string(rc.Event.Level), nil
	case "logger":
		return rc.Event.LoggerName, nil
	case "message":
		return rc.Event.Message, nil
	default:
		return "", &EvalError{
			Kind:    FaultUnknownFact,
			Message: fmt.Sprintf("unknown fact '%s'", marker),
		}
	}
}

// Validate checks marker syntax without needing a rendering context.
// Used at configuration time so bad templates fail at startup, not per
// event.
func Validate(template string) error {
	rest := template
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			return nil
		}
		rest = rest[i+2:]
		j := strings.IndexByte(rest, '}')
		if j < 0 {
			return &EvalError{
				Kind:    FaultBadMarker,
				Message: "unterminated marker in template",
			}
		}
		if rest[:j] == "" {
			return &EvalError{
				Kind:    FaultBadMarker,
				Message: "empty marker",
			}
		}
		rest = rest[j+1:]
	}
}
