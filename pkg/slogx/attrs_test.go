package slogx

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type named string

func (n named) String() string { return "name:" + string(n) }

func TestStringer(t *testing.T) {
	attr := Stringer("kind", named("presence"))
	assert.Equal(t, "kind", attr.Key)
	assert.Equal(t, "name:presence", attr.Value.String())
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		limit int
		want  string
	}{
		{name: "short", data: "abc", limit: 10, want: "abc"},
		{name: "exact", data: "abcd", limit: 4, want: "abcd"},
		{name: "cut", data: "abcdef", limit: 3, want: "abc…"},
		{name: "no limit", data: "abcdef", limit: 0, want: "abcdef"},
		{name: "mid rune", data: "aé€z", limit: 2, want: "a…"},
		{name: "mid three byte rune", data: "aé€z", limit: 5, want: "aé…"},
		{name: "rune boundary", data: "aé€z", limit: 3, want: "aé…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncated("payload", []byte(tt.data), tt.limit).Value.String()
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
