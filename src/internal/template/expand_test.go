// FILE: src/internal/template/expand_test.go
package template

import (
	"testing"
	"time"

	"loglayout/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(vars map[string]string) Context {
	return Context{
		Event: core.LogEvent{
			Time:       time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC),
			Level:      core.LevelWarn,
			LoggerName: "app.db",
			Message:    "connection lost",
		},
		Variables: core.NewVariableStore(vars),
	}
}

func TestExpander_Evaluate(t *testing.T) {
	e := NewExpander()

	testCases := []struct {
		name     string
		template string
		vars     map[string]string
		expected string
	}{
		{
			name:     "LiteralPassthrough",
			template: "plain text, no markers",
			expected: "plain text, no markers",
		},
		{
			name:     "DollarWithoutBraceIsLiteral",
			template: "cost: $5",
			expected: "cost: $5",
		},
		{
			name:     "VariableHit",
			template: "${var:region}",
			vars:     map[string]string{"region": "eu-west-1"},
			expected: "eu-west-1",
		},
		{
			name:     "VariableMissingExpandsEmpty",
			template: "a${var:nope}b",
			expected: "ab",
		},
		{
			name:     "EventFacts",
			template: "${level}/${logger}: ${message}",
			expected: "Warn/app.db: connection lost",
		},
		{
			name:     "MixedLiteralAndMarkers",
			template: "region=${var:region} zone=${var:zone}",
			vars:     map[string]string{"region": "us", "zone": "b"},
			expected: "region=us zone=b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := e.Evaluate(tc.template, testContext(tc.vars))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	t.Run("ProcessFacts", func(t *testing.T) {
		out, err := e.Evaluate("${machinename}", testContext(nil))
		require.NoError(t, err)
		assert.NotEmpty(t, out)

		out, err = e.Evaluate("${processid}", testContext(nil))
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("NoRawMarkerLeaksOnMissingVariable", func(t *testing.T) {
		out, err := e.Evaluate("${var:absent}", testContext(nil))
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.NotContains(t, out, "var:")
	})
}

func TestExpander_Faults(t *testing.T) {
	e := NewExpander()

	testCases := []struct {
		name     string
		template string
		kind     string
	}{
		{
			name:     "UnknownFact",
			template: "${flux}",
			kind:     FaultUnknownFact,
		},
		{
			name:     "UnknownFacility",
			template: "${db:host}",
			kind:     FaultUnknownFact,
		},
		{
			name:     "UnterminatedMarker",
			template: "broken ${var:x",
			kind:     FaultBadMarker,
		},
		{
			name:     "EmptyMarker",
			template: "${}",
			kind:     FaultBadMarker,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Evaluate(tc.template, testContext(nil))
			require.Error(t, err)

			var evalErr *EvalError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tc.kind, evalErr.Kind)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("no markers"))
	assert.NoError(t, Validate("${var:x} and ${machinename}"))
	assert.Error(t, Validate("${var:x"))
	assert.Error(t, Validate("${}"))
}
