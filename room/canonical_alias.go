package room

import (
	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/ref"
)

// CanonicalAliasEvent informs the room as to which alias is the canonical one.
type CanonicalAliasEvent = events.StateEvent[CanonicalAliasContent]

// CanonicalAliasContent is the payload of an m.room.canonical_alias event.
type CanonicalAliasContent struct {
	// Alias is the canonical alias.
	Alias ref.RoomAliasID `json:"alias"`
}

// EventType implements events.Content.
func (CanonicalAliasContent) EventType() events.EventType { return events.RoomCanonicalAlias }

// UnmarshalJSON enforces the mandatory alias key.
func (c *CanonicalAliasContent) UnmarshalJSON(data []byte) error {
	type plain CanonicalAliasContent
	return events.UnmarshalContent(data, (*plain)(c), "alias")
}
