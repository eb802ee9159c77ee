package mxevents

import (
	"errors"
	"fmt"

	"github.com/casualjim/mxevents/codec"
	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/presence"
	"github.com/casualjim/mxevents/room"
	"github.com/tidwall/gjson"
)

type kind struct {
	state   bool
	content events.Content
	decode  func(data []byte, options ...events.DecodeOption) (events.Any, error)
}

func message[C events.Content]() kind {
	var zero C
	return kind{
		content: zero,
		decode: func(data []byte, options ...events.DecodeOption) (events.Any, error) {
			e, err := events.Decode[C](data, options...)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}
}

func state[C events.Content]() kind {
	var zero C
	return kind{
		state:   true,
		content: zero,
		decode: func(data []byte, options ...events.DecodeOption) (events.Any, error) {
			e, err := events.DecodeState[C](data, options...)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}
}

var kinds = map[events.EventType]kind{
	events.Presence:              message[presence.Content](),
	events.RoomAliases:           state[room.AliasesContent](),
	events.RoomAvatar:            state[room.AvatarContent](),
	events.RoomCanonicalAlias:    state[room.CanonicalAliasContent](),
	events.RoomCreate:            state[room.CreateContent](),
	events.RoomGuestAccess:       state[room.GuestAccessContent](),
	events.RoomHistoryVisibility: state[room.HistoryVisibilityContent](),
	events.RoomJoinRules:         state[room.JoinRulesContent](),
	events.RoomMember:            state[room.MemberContent](),
	events.RoomName:              state[room.NameContent](),
	events.RoomTopic:             state[room.TopicContent](),
}

func init() {
	for _, t := range events.EventTypes() {
		if _, ok := kinds[t]; !ok {
			panic(fmt.Sprintf("mxevents: no decoder registered for %s", t))
		}
	}
}

// Unmarshal decodes a wire event of any supported kind. The dynamic type of
// the result is the envelope alias of that kind, e.g. presence.Event or
// room.MemberEvent.
//
// A "type" naming a kind this package does not model fails with
// events.ErrUnknownDiscriminator so callers can skip it.
func Unmarshal(data []byte, options ...events.DecodeOption) (events.Any, error) {
	t, err := peekType(data)
	if err != nil {
		return nil, err
	}
	return kinds[t].decode(data, options...)
}

// UnmarshalFrom is Unmarshal for data encoded with c.
func UnmarshalFrom(c codec.Codec, data []byte, options ...events.DecodeOption) (events.Any, error) {
	wire, err := c.ToJSON(data)
	if err != nil {
		return nil, &events.FieldError{Kind: events.ErrTypeMismatch, Err: err}
	}
	return Unmarshal(wire, options...)
}

// IsState reports whether events of kind t use the state envelope.
func IsState(t events.EventType) bool {
	return kinds[t].state
}

func peekType(data []byte) (events.EventType, error) {
	if !gjson.ValidBytes(data) {
		return 0, &events.FieldError{Kind: events.ErrTypeMismatch, Err: errors.New("invalid json")}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return 0, &events.FieldError{Kind: events.ErrTypeMismatch, Err: fmt.Errorf("expected a JSON object, got %s", root.Type)}
	}

	raw := root.Get("type")
	switch raw.Type {
	case gjson.String:
	case gjson.Null:
		return 0, &events.FieldError{Field: "type", Kind: events.ErrMissingField}
	default:
		return 0, &events.FieldError{Field: "type", Kind: events.ErrTypeMismatch, Err: fmt.Errorf("expected a string, got %s", raw.Type)}
	}

	t, err := events.ParseEventType(raw.String())
	if err != nil {
		return 0, &events.FieldError{Field: "type", Kind: events.ErrUnknownDiscriminator, Err: fmt.Errorf("%q is not a supported event type", raw.String())}
	}
	return t, nil
}
