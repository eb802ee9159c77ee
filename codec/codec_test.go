package codec_test

import (
	"testing"

	"github.com/casualjim/mxevents/codec"
	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/presence"
	"github.com/casualjim/mxevents/ref"
	"github.com/casualjim/mxevents/room"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presenceWire = `{"content":{"avatar_url":"mxc://localhost:wefuiwegh8742w","currently_active":false,"last_active_ago":2478593,"presence":"online","status_msg":"Making cupcakes"},"type":"m.presence","sender":"@example:localhost"}`

func examplePresence() presence.Event {
	return events.New(presence.Content{
		AvatarURL:       swag.String("mxc://localhost:wefuiwegh8742w"),
		CurrentlyActive: swag.Bool(false),
		LastActiveAgo:   swag.Uint64(2478593),
		Presence:        presence.Online,
		StatusMsg:       swag.String("Making cupcakes"),
	}, ref.MustParseUserID("@example:localhost"))
}

func TestGet(t *testing.T) {
	assert.Equal(t, []string{"cbor", "json", "msgpack"}, codec.Names())

	for _, name := range codec.Names() {
		c, err := codec.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := codec.Get("protobuf")
	assert.ErrorIs(t, err, codec.ErrNotRegistered)
	assert.Equal(t, "json", codec.Default.Name())
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, name := range codec.Names() {
		c, err := codec.Get(name)
		require.NoError(t, err)

		t.Run(name+"/presence", func(t *testing.T) {
			event := examplePresence()
			data, err := c.Marshal(event)
			require.NoError(t, err)

			var decoded presence.Event
			require.NoError(t, c.Unmarshal(data, &decoded))
			assert.True(t, event.Equal(decoded))

			wire, err := c.ToJSON(data)
			require.NoError(t, err)
			assert.JSONEq(t, presenceWire, string(wire))
		})

		t.Run(name+"/member", func(t *testing.T) {
			event := events.NewState(room.MemberContent{Membership: room.Join}, ref.MustParseUserID("@carl:example.com"), "@carl:example.com").
				WithPrevContent(room.MemberContent{Membership: room.Invite})

			data, err := c.Marshal(event)
			require.NoError(t, err)

			var decoded room.MemberEvent
			require.NoError(t, c.Unmarshal(data, &decoded))
			assert.True(t, event.Equal(decoded))
		})

		t.Run(name+"/validation", func(t *testing.T) {
			data, err := c.Marshal(map[string]any{
				"content": map[string]any{},
				"type":    "m.presence",
				"sender":  "@example:localhost",
			})
			require.NoError(t, err)

			var decoded presence.Event
			assert.ErrorIs(t, c.Unmarshal(data, &decoded), events.ErrMissingField)
		})
	}
}

func TestCBOR_Deterministic(t *testing.T) {
	a, err := codec.CBOR.Marshal(examplePresence())
	require.NoError(t, err)
	b, err := codec.CBOR.Marshal(examplePresence())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBinary_Garbage(t *testing.T) {
	for _, c := range []codec.Codec{codec.CBOR, codec.MsgPack, codec.JSON} {
		t.Run(c.Name(), func(t *testing.T) {
			_, err := c.ToJSON([]byte{0xc1})
			assert.Error(t, err)
		})
	}
}
