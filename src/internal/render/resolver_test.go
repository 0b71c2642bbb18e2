// FILE: src/internal/render/resolver_test.go
package render

import (
	"testing"

	"loglayout/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func descriptors(names ...string) []core.PropertyDescriptor {
	props := make([]core.PropertyDescriptor, len(names))
	for i, n := range names {
		props[i] = core.PropertyDescriptor{Name: n, Template: "x"}
	}
	return props
}

func TestResolveKeys(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "NoProperties",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "UniqueNamesKeepBareForm",
			input:    []string{"user", "request_id"},
			expected: []string{"user", "request_id"},
		},
		{
			name:     "StandardFieldNameGetsPrefix",
			input:    []string{"Level"},
			expected: []string{"properties_Level"},
		},
		{
			name:     "AllStandardNamesPrefixed",
			input:    []string{"TimeStamp", "Level", "LoggerName", "Message"},
			expected: []string{"properties_TimeStamp", "properties_Level", "properties_LoggerName", "properties_Message"},
		},
		{
			name:     "SecondOccurrencePrefixed",
			input:    []string{"duplicate", "duplicate"},
			expected: []string{"duplicate", "properties_duplicate"},
		},
		{
			name:     "ThreeWayDuplicateSharesPrefixedKey",
			input:    []string{"duplicate", "duplicate", "duplicate"},
			expected: []string{"duplicate", "properties_duplicate", "properties_duplicate"},
		},
		{
			name:     "BarePrefixedNameTakenByEarlierProperty",
			input:    []string{"properties_x", "x", "x"},
			expected: []string{"properties_x", "x", "properties_x"},
		},
		{
			name:     "OrderIndependentNamesUnaffected",
			input:    []string{"a", "Level", "a", "b"},
			expected: []string{"a", "properties_Level", "properties_a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			keys := resolveKeys(descriptors(tc.input...))
			assert.Equal(t, tc.expected, keys)
		})
	}
}
