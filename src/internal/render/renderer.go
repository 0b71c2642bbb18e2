// FILE: src/internal/render/renderer.go
package render

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"loglayout/src/internal/core"
	"loglayout/src/internal/format"
	"loglayout/src/internal/template"

	"github.com/lixenwraith/log"
)

// Renderer turns one log event into one JSON output line: the four
// standard fields first, then the configured properties in declaration
// order under their resolved keys. Immutable after construction, safe for
// concurrent Render calls.
type Renderer struct {
	props     []core.PropertyDescriptor
	keys      []string
	evaluator template.Evaluator
	formatter format.Formatter
	clock     func() time.Time
	logger    *log.Logger

	// Statistics
	totalRendered  atomic.Uint64
	propertyFaults atomic.Uint64
}

// Stats contains renderer statistics.
type Stats struct {
	TotalRendered  uint64
	PropertyFaults uint64
}

// New creates a renderer for the given property list. The property list
// must not be mutated afterwards. A nil clock defaults to time.Now.
func New(props *core.PropertyList, evaluator template.Evaluator, formatter format.Formatter, clock func() time.Time, logger *log.Logger) *Renderer {
	if clock == nil {
		clock = time.Now
	}

	descriptors := props.All()
	r := &Renderer{
		props:     descriptors,
		keys:      resolveKeys(descriptors),
		evaluator: evaluator,
		formatter: formatter,
		clock:     clock,
		logger:    logger,
	}

	logger.Debug("msg", "Renderer created",
		"component", "renderer",
		"property_count", len(descriptors))

	return r
}

// Render produces the output line for one event against the current
// variable store snapshot. A failing property is contained: its value
// becomes a diagnostic string and rendering continues.
func (r *Renderer) Render(event core.LogEvent, vars *core.VariableStore) ([]byte, error) {
	fields := make([]format.Field, 0, 4+len(r.props))

	fields = append(fields,
		format.Field{Key: core.FieldTimeStamp, Value: r.clock().UTC().Format(core.TimestampLayout)},
		format.Field{Key: core.FieldLevel, Value: string(event.Level)},
		format.Field{Key: core.FieldLoggerName, Value: event.LoggerName},
		format.Field{Key: core.FieldMessage, Value: event.Message},
	)

	rc := template.Context{
		Event:     event,
		Variables: vars,
	}

	for i, p := range r.props {
		value, failed := r.evaluate(p.Template, rc)
		if failed {
			r.propertyFaults.Add(1)
			r.logger.Debug("msg", "Property evaluation failed",
				"component", "renderer",
				"property", p.Name,
				"diagnostic", value)
		} else if value == "" {
			// Empty evaluated text drops the property from the line
			continue
		}
		fields = append(fields, format.Field{Key: r.keys[i], Value: value})
	}

	line, err := r.formatter.Format(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble output line: %w", err)
	}

	r.totalRendered.Add(1)
	return line, nil
}

// evaluate runs one property template, converting any error or panic
// into a diagnostic value. failed reports whether the value is a
// diagnostic rather than rendered text.
func (r *Renderer) evaluate(tmpl string, rc template.Context) (value string, failed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			value = fmt.Sprintf("Render failed: Panic %v", rec)
			failed = true
		}
	}()

	text, err := r.evaluator.Evaluate(tmpl, rc)
	if err != nil {
		var evalErr *template.EvalError
		if errors.As(err, &evalErr) {
			return fmt.Sprintf("Render failed: %s %s", evalErr.Kind, evalErr.Message), true
		}
		return fmt.Sprintf("Render failed: EvaluationError %s", err.Error()), true
	}
	return text, false
}

// GetStats returns renderer statistics.
func (r *Renderer) GetStats() Stats {
	return Stats{
		TotalRendered:  r.totalRendered.Load(),
		PropertyFaults: r.propertyFaults.Load(),
	}
}
