package events_test

import (
	"errors"
	"testing"

	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *events.FieldError
		want string
	}{
		{name: "kind only", err: &events.FieldError{Kind: events.ErrTypeMismatch}, want: "type mismatch"},
		{name: "with field", err: &events.FieldError{Field: "content.presence", Kind: events.ErrMissingField}, want: "missing required field 'content.presence'"},
		{name: "with cause", err: &events.FieldError{Field: "sender", Kind: events.ErrTypeMismatch, Err: errors.New("expected a string")}, want: "type mismatch 'sender': expected a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFieldError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &events.FieldError{Field: "x", Kind: events.ErrTypeMismatch, Err: cause}
	assert.ErrorIs(t, err, events.ErrTypeMismatch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, events.ErrMissingField)
}

func TestErrInvalidIdentifier_SharedWithRef(t *testing.T) {
	_, err := ref.ParseUserID("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, events.ErrInvalidIdentifier)
}

func TestUnmarshalContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		field string
	}{
		{name: "missing", input: `{}`, kind: events.ErrMissingField, field: "topic"},
		{name: "null", input: `{"topic":null}`, kind: events.ErrMissingField, field: "topic"},
		{name: "array", input: `[]`, kind: events.ErrTypeMismatch},
		{name: "garbage", input: `topic`, kind: events.ErrTypeMismatch},
		{name: "wrong type", input: `{"topic":3}`, kind: events.ErrTypeMismatch, field: "topic"},
		{name: "wrong nested type", input: `{"topic":"t","tags":[1]}`, kind: events.ErrTypeMismatch, field: "tags"},
		{name: "bool for list", input: `{"topic":"t","tags":true}`, kind: events.ErrTypeMismatch, field: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c topic
			err := c.UnmarshalJSON([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var fe *events.FieldError
			require.ErrorAs(t, err, &fe)
			if tt.field != "" {
				assert.Equal(t, tt.field, fe.Field)
			}
		})
	}

	t.Run("ok", func(t *testing.T) {
		var c topic
		require.NoError(t, c.UnmarshalJSON([]byte(`{"topic":"hello","tags":["a"]}`)))
		assert.Equal(t, topic{Topic: "hello", Tags: []string{"a"}}, c)
	})
}

func TestRequireFields(t *testing.T) {
	require.NoError(t, events.RequireFields([]byte(`{"a":1,"b":false}`), "a", "b"))
	assert.ErrorIs(t, events.RequireFields([]byte(`{"a":1}`), "a", "b"), events.ErrMissingField)
	assert.ErrorIs(t, events.RequireFields([]byte(`"a"`), "a"), events.ErrTypeMismatch)
}
