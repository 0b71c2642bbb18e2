// FILE: src/internal/format/json.go
package format

import (
	"fmt"

	"github.com/lixenwraith/log"
)

// JSONFormatter produces compact single-line JSON objects from ordered
// fields. Keys are written in the order given, duplicates included; a map
// marshal would sort and deduplicate, so the object is appended by hand
// with standard JSON string escaping.
type JSONFormatter struct {
	logger *log.Logger
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(logger *log.Logger) *JSONFormatter {
	return &JSONFormatter{
		logger: logger,
	}
}

// Format assembles the fields into one JSON object followed by a newline.
func (f *JSONFormatter) Format(fields []Field) ([]byte, error) {
	// Rough pre-size: braces, quotes, separators plus content
	size := 2
	for _, fld := range fields {
		size += len(fld.Key) + len(fld.Value) + 6
	}

	buf := make([]byte, 0, size)
	buf = append(buf, '{')
	for i, fld := range fields {
		if fld.Key == "" {
			return nil, fmt.Errorf("field %d has empty key", i)
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSONString(buf, fld.Key)
		buf = append(buf, ':')
		buf = appendJSONString(buf, fld.Value)
	}
	buf = append(buf, '}', '\n')

	return buf, nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s as a quoted JSON string literal. Quote,
// backslash and control characters are escaped; multi-byte UTF-8 passes
// through untouched.
func appendJSONString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf = append(buf, '\\', '"')
		case c == '\\':
			buf = append(buf, '\\', '\\')
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c == '\b':
			buf = append(buf, '\\', 'b')
		case c == '\f':
			buf = append(buf, '\\', 'f')
		case c < 0x20:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}
