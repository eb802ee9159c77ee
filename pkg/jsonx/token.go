package jsonx

import (
	"bytes"
	"reflect"

	json "github.com/goccy/go-json"
)

var null = []byte("null")

// IsNull reports whether data is the JSON null literal.
func IsNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), null)
}

// String decodes a JSON string token. Any other token, null included, fails
// with a *json.UnmarshalTypeError naming target.
func String(data []byte, target reflect.Type) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return "", &json.UnmarshalTypeError{Value: tokenKind(data), Type: target}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

// tokenKind names the JSON type of the token starting data.
func tokenKind(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "empty input"
	}
	switch data[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "bool"
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return "number"
	}
}
