package mxevents

import (
	"testing"

	"github.com/casualjim/mxevents/events"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyNames(s *jsonschema.Schema) []string {
	var names []string
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func TestContentSchema(t *testing.T) {
	tests := []struct {
		kind     events.EventType
		props    []string
		required []string
	}{
		{
			kind:     events.Presence,
			props:    []string{"avatar_url", "currently_active", "displayname", "last_active_ago", "presence", "status_msg"},
			required: []string{"presence"},
		},
		{kind: events.RoomAliases, props: []string{"aliases"}, required: []string{"aliases"}},
		{kind: events.RoomAvatar, props: []string{"url", "info"}, required: []string{"url"}},
		{kind: events.RoomCreate, props: []string{"creator", "m.federate"}, required: []string{"creator"}},
		{kind: events.RoomMember, props: []string{"avatar_url", "displayname", "is_direct", "membership"}, required: []string{"membership"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, err := ContentSchema(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, "object", s.Type)
			assert.Equal(t, tt.props, propertyNames(s))
			assert.Equal(t, tt.required, s.Required)
		})
	}
}

func TestContentSchema_Enum(t *testing.T) {
	s, err := ContentSchema(events.Presence)
	require.NoError(t, err)

	p, ok := s.Properties.Get("presence")
	require.True(t, ok)
	assert.Equal(t, []any{"offline", "online", "unavailable"}, p.Enum)
}

func TestEnvelopeSchema(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		s, err := EnvelopeSchema(events.Presence)
		require.NoError(t, err)
		assert.Equal(t, []string{"content", "type", "sender"}, propertyNames(s))
		assert.Equal(t, []string{"content", "type", "sender"}, s.Required)

		typ, _ := s.Properties.Get("type")
		assert.Equal(t, "m.presence", typ.Const)
	})

	t.Run("state", func(t *testing.T) {
		s, err := EnvelopeSchema(events.RoomTopic)
		require.NoError(t, err)
		assert.Equal(t, []string{"content", "type", "state_key", "sender", "prev_content"}, propertyNames(s))
		assert.Equal(t, []string{"content", "type", "sender"}, s.Required)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := EnvelopeSchema(events.EventType(200))
		assert.ErrorIs(t, err, events.ErrUnknownDiscriminator)

		_, err = ContentSchema(events.EventType(0))
		assert.ErrorIs(t, err, events.ErrUnknownDiscriminator)
	})
}
