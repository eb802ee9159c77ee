package events

import (
	"fmt"

	"github.com/casualjim/mxevents/pkg/enumx"
)

// EventType is the discriminator identifying an event kind. The set is closed:
// decoding a wire string outside it fails with ErrUnknownDiscriminator.
type EventType uint8

const (
	eventTypeInvalid EventType = iota

	// Presence is "m.presence".
	Presence
	// RoomAliases is "m.room.aliases".
	RoomAliases
	// RoomAvatar is "m.room.avatar".
	RoomAvatar
	// RoomCanonicalAlias is "m.room.canonical_alias".
	RoomCanonicalAlias
	// RoomCreate is "m.room.create".
	RoomCreate
	// RoomGuestAccess is "m.room.guest_access".
	RoomGuestAccess
	// RoomHistoryVisibility is "m.room.history_visibility".
	RoomHistoryVisibility
	// RoomJoinRules is "m.room.join_rules".
	RoomJoinRules
	// RoomMember is "m.room.member".
	RoomMember
	// RoomName is "m.room.name".
	RoomName
	// RoomTopic is "m.room.topic".
	RoomTopic
)

var eventTypes = enumx.NewTable("event type", eventTypeInvalid,
	enumx.Entry[EventType]{Value: Presence, Wire: "m.presence"},
	enumx.Entry[EventType]{Value: RoomAliases, Wire: "m.room.aliases"},
	enumx.Entry[EventType]{Value: RoomAvatar, Wire: "m.room.avatar"},
	enumx.Entry[EventType]{Value: RoomCanonicalAlias, Wire: "m.room.canonical_alias"},
	enumx.Entry[EventType]{Value: RoomCreate, Wire: "m.room.create"},
	enumx.Entry[EventType]{Value: RoomGuestAccess, Wire: "m.room.guest_access"},
	enumx.Entry[EventType]{Value: RoomHistoryVisibility, Wire: "m.room.history_visibility"},
	enumx.Entry[EventType]{Value: RoomJoinRules, Wire: "m.room.join_rules"},
	enumx.Entry[EventType]{Value: RoomMember, Wire: "m.room.member"},
	enumx.Entry[EventType]{Value: RoomName, Wire: "m.room.name"},
	enumx.Entry[EventType]{Value: RoomTopic, Wire: "m.room.topic"},
)

// ParseEventType resolves a wire string such as "m.presence".
func ParseEventType(s string) (EventType, error) {
	t, ok := eventTypes.Lookup(s)
	if !ok {
		return eventTypeInvalid, fmt.Errorf("%w: %q", ErrUnknownDiscriminator, s)
	}
	return t, nil
}

// EventTypes returns every supported kind in declaration order.
func EventTypes() []EventType {
	return eventTypes.Values()
}

// IsValid reports whether t is one of the declared kinds.
func (t EventType) IsValid() bool {
	return eventTypes.Known(t)
}

// String returns the wire string.
func (t EventType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
	return eventTypes.Wire(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t EventType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiscriminator, t)
	}
	return []byte(eventTypes.Wire(t)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EventType) UnmarshalText(data []byte) error {
	parsed, err := ParseEventType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
