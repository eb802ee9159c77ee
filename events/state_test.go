package events_test

import (
	"testing"

	"github.com/casualjim/mxevents/events"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestStateEvent_Marshal(t *testing.T) {
	tests := []struct {
		name  string
		event events.StateEvent[topic]
		want  string
	}{
		{
			name:  "empty state key",
			event: events.NewState(topic{Topic: "Cupcakes"}, example, ""),
			want:  `{"content":{"topic":"Cupcakes"},"type":"m.room.topic","state_key":"","sender":"@example:localhost"}`,
		},
		{
			name:  "with state key",
			event: events.NewState(topic{Topic: "Cupcakes"}, example, "@example:localhost"),
			want:  `{"content":{"topic":"Cupcakes"},"type":"m.room.topic","state_key":"@example:localhost","sender":"@example:localhost"}`,
		},
		{
			name:  "with prev content",
			event: events.NewState(topic{Topic: "Cupcakes"}, example, "").WithPrevContent(topic{Topic: "Muffins"}),
			want:  `{"content":{"topic":"Cupcakes"},"type":"m.room.topic","state_key":"","sender":"@example:localhost","prev_content":{"topic":"Muffins"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			decoded, err := events.DecodeState[topic](data)
			require.NoError(t, err)
			assert.True(t, tt.event.Equal(decoded))
		})
	}
}

func TestStateEvent_PrevContentOmitted(t *testing.T) {
	data, err := json.Marshal(events.NewState(topic{Topic: "Cupcakes"}, example, ""))
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(data, "prev_content").Exists())
	assert.True(t, gjson.GetBytes(data, "state_key").Exists())
}

func TestStateEvent_WithPrevContentCopies(t *testing.T) {
	base := events.NewState(topic{Topic: "new"}, example, "")
	withPrev := base.WithPrevContent(topic{Topic: "old"})

	assert.Nil(t, base.PrevContent)
	require.NotNil(t, withPrev.PrevContent)
	assert.Equal(t, "old", withPrev.PrevContent.Topic)
}

func TestDecodeState_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "absent", input: `{"content":{"topic":"t"},"type":"m.room.topic","sender":"@example:localhost"}`},
		{name: "null", input: `{"content":{"topic":"t"},"type":"m.room.topic","sender":"@example:localhost","state_key":null,"prev_content":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := events.DecodeState[topic]([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, "", event.StateKey)
			assert.Nil(t, event.PrevContent)
			assert.Equal(t, "t", event.Content.Topic)
		})
	}
}

func TestDecodeState_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		field string
	}{
		{name: "state key not a string", input: `{"content":{"topic":"t"},"type":"m.room.topic","state_key":1,"sender":"@example:localhost"}`, kind: events.ErrTypeMismatch, field: "state_key"},
		{name: "prev content not an object", input: `{"content":{"topic":"t"},"type":"m.room.topic","sender":"@example:localhost","prev_content":[]}`, kind: events.ErrTypeMismatch, field: "prev_content"},
		{name: "prev content missing field", input: `{"content":{"topic":"t"},"type":"m.room.topic","sender":"@example:localhost","prev_content":{}}`, kind: events.ErrMissingField, field: "prev_content.topic"},
		{name: "content null field", input: `{"content":{"topic":null},"type":"m.room.topic","sender":"@example:localhost"}`, kind: events.ErrMissingField, field: "content.topic"},
		{name: "content wrong type", input: `{"content":{"topic":"t","tags":"a"},"type":"m.room.topic","sender":"@example:localhost"}`, kind: events.ErrTypeMismatch, field: "content.tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := events.DecodeState[topic]([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			if tt.field != "" {
				var fe *events.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.field, fe.Field)
			}
		})
	}
}

func TestStateEvent_EqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := events.NewState(topic{Topic: "t"}, example, "")
	b := events.NewState(topic{Topic: "t", Tags: []string{}}, example, "")
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(a.WithPrevContent(topic{Topic: "t"})))
	assert.False(t, a.Equal(events.NewState(topic{Topic: "t"}, example, "key")))
}
