// FILE: src/internal/template/evaluator.go
package template

import (
	"fmt"

	"loglayout/src/internal/core"
)

// Evaluator turns one property template into text against a rendering
// context, or fails. Implementations must not retain the context beyond
// the call.
type Evaluator interface {
	Evaluate(template string, rc Context) (string, error)
}

// Context carries everything a template may reference during one render:
// the event under render and the live variable store.
type Context struct {
	Event     core.LogEvent
	Variables *core.VariableStore
}

// EvalError reports a template fault with a classification usable in
// diagnostic output.
type EvalError struct {
	Kind    string
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Fault kinds reported by the built-in expander
const (
	FaultBadMarker   = "BadMarker"
	FaultUnknownFact = "UnknownFact"
)
