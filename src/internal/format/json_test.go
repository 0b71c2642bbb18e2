// FILE: src/internal/format/json_test.go
package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestNew(t *testing.T) {
	logger := newTestLogger()

	t.Run("JSONFormatter", func(t *testing.T) {
		f, err := New("json", logger)
		require.NoError(t, err)
		assert.Equal(t, "json", f.Name())
	})

	t.Run("DefaultToJSON", func(t *testing.T) {
		f, err := New("", logger)
		require.NoError(t, err)
		assert.Equal(t, "json", f.Name())
	})

	t.Run("UnknownFormatter", func(t *testing.T) {
		f, err := New("xml", logger)
		assert.Error(t, err)
		assert.Nil(t, f)
	})
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := NewJSONFormatter(newTestLogger())

	t.Run("BasicObject", func(t *testing.T) {
		output, err := formatter.Format([]Field{
			{Key: "Level", Value: "Info"},
			{Key: "Message", Value: "hello"},
		})
		require.NoError(t, err)

		assert.Equal(t, `{"Level":"Info","Message":"hello"}`+"\n", string(output))
	})

	t.Run("EmptyFieldList", func(t *testing.T) {
		output, err := formatter.Format(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(output))
	})

	t.Run("KeyOrderPreserved", func(t *testing.T) {
		output, err := formatter.Format([]Field{
			{Key: "zz", Value: "1"},
			{Key: "aa", Value: "2"},
			{Key: "mm", Value: "3"},
		})
		require.NoError(t, err)

		line := string(output)
		assert.Less(t, strings.Index(line, `"zz"`), strings.Index(line, `"aa"`))
		assert.Less(t, strings.Index(line, `"aa"`), strings.Index(line, `"mm"`))
	})

	t.Run("DuplicateKeysEmittedAsGiven", func(t *testing.T) {
		output, err := formatter.Format([]Field{
			{Key: "k", Value: "first"},
			{Key: "k", Value: "second"},
		})
		require.NoError(t, err)
		assert.Equal(t, `{"k":"first","k":"second"}`+"\n", string(output))
	})

	t.Run("EmptyKeyRejected", func(t *testing.T) {
		_, err := formatter.Format([]Field{{Key: "", Value: "x"}})
		assert.Error(t, err)
	})

	t.Run("NoExtraWhitespace", func(t *testing.T) {
		output, err := formatter.Format([]Field{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
		})
		require.NoError(t, err)
		assert.NotContains(t, strings.TrimSuffix(string(output), "\n"), " ")
	})
}

func TestJSONFormatter_Escaping(t *testing.T) {
	formatter := NewJSONFormatter(newTestLogger())

	testCases := []struct {
		name  string
		value string
	}{
		{name: "Quote", value: `say "hi"`},
		{name: "Backslash", value: `C:\logs\app`},
		{name: "Newline", value: "line1\nline2"},
		{name: "Tab", value: "a\tb"},
		{name: "CarriageReturn", value: "a\rb"},
		{name: "ControlChar", value: "a\x01b"},
		{name: "Unicode", value: "héllo wörld 日本語"},
		{name: "Mixed", value: "\"\\\n\r\t\b\f\x00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := formatter.Format([]Field{{Key: "v", Value: tc.value}})
			require.NoError(t, err)

			var decoded map[string]string
			err = json.Unmarshal(output, &decoded)
			require.NoError(t, err, "Output should be valid JSON")
			assert.Equal(t, tc.value, decoded["v"], "Value should round-trip")
		})
	}

	t.Run("KeyEscaping", func(t *testing.T) {
		output, err := formatter.Format([]Field{{Key: `we"ird`, Value: "x"}})
		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(output, &decoded))
		assert.Equal(t, "x", decoded[`we"ird`])
	})
}
