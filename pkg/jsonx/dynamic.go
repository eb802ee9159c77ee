// Package jsonx converts between JSON documents and the dynamic Go values
// the binary codecs encode.
package jsonx

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// ToDynamic decodes a JSON document into maps, slices and scalars. Integral
// numbers become int64, or uint64 when they exceed math.MaxInt64, so that
// counters survive a trip through a binary encoding unchanged. Other numbers
// become float64.
func ToDynamic(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v)
}

// FromDynamic encodes a dynamic value produced by a binary decoder back to
// JSON. Map keys must be strings.
func FromDynamic(v any) ([]byte, error) {
	clean, err := stringKeys(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(clean)
}

func normalize(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		for k, elem := range val {
			n, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			val[k] = n
		}
		return val, nil
	case []any:
		for i, elem := range val {
			n, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			val[i] = n
		}
		return val, nil
	case json.Number:
		return number(val)
	default:
		return val, nil
	}
}

func number(n json.Number) (any, error) {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("jsonx: invalid number %q: %w", s, err)
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("jsonx: number %q out of range", s)
	}
	return f, nil
}

// stringKeys rewrites map[any]any, which some decoders produce for nested
// maps, into map[string]any.
func stringKeys(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			c, err := stringKeys(elem)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("jsonx: map key %v (%T) is not a string", k, k)
			}
			c, err := stringKeys(elem)
			if err != nil {
				return nil, err
			}
			out[key] = c
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			c, err := stringKeys(elem)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return val, nil
	}
}
