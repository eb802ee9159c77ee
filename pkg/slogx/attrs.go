// Package slogx holds slog attribute helpers shared by the decoders.
package slogx

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Stringer returns an attribute holding value.String().
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Truncated returns an attribute holding at most limit bytes of data, marking
// cut values with a trailing ellipsis. The cut never splits a UTF-8 sequence.
func Truncated(key string, data []byte, limit int) slog.Attr {
	if limit <= 0 || len(data) <= limit {
		return slog.String(key, string(data))
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return slog.String(key, string(data[:cut])+"…")
}
