package room

import (
	"github.com/casualjim/mxevents/events"
)

type (
	// GuestAccessEvent controls whether guest users are allowed to join.
	GuestAccessEvent = events.StateEvent[GuestAccessContent]

	// HistoryVisibilityEvent controls who can see the room's history.
	HistoryVisibilityEvent = events.StateEvent[HistoryVisibilityContent]

	// JoinRulesEvent describes how users are allowed to join the room.
	JoinRulesEvent = events.StateEvent[JoinRulesContent]

	// NameEvent sets the human-friendly name of the room.
	NameEvent = events.StateEvent[NameContent]

	// TopicEvent sets the topic of the room.
	TopicEvent = events.StateEvent[TopicContent]
)

// GuestAccessContent is the payload of an m.room.guest_access event.
type GuestAccessContent struct {
	GuestAccess GuestAccess `json:"guest_access"`
}

// EventType implements events.Content.
func (GuestAccessContent) EventType() events.EventType { return events.RoomGuestAccess }

// UnmarshalJSON enforces the mandatory guest_access key.
func (c *GuestAccessContent) UnmarshalJSON(data []byte) error {
	type plain GuestAccessContent
	return events.UnmarshalContent(data, (*plain)(c), "guest_access")
}

// HistoryVisibilityContent is the payload of an m.room.history_visibility
// event.
type HistoryVisibilityContent struct {
	HistoryVisibility HistoryVisibility `json:"history_visibility"`
}

// EventType implements events.Content.
func (HistoryVisibilityContent) EventType() events.EventType {
	return events.RoomHistoryVisibility
}

// UnmarshalJSON enforces the mandatory history_visibility key.
func (c *HistoryVisibilityContent) UnmarshalJSON(data []byte) error {
	type plain HistoryVisibilityContent
	return events.UnmarshalContent(data, (*plain)(c), "history_visibility")
}

// JoinRulesContent is the payload of an m.room.join_rules event.
type JoinRulesContent struct {
	JoinRule JoinRule `json:"join_rule"`
}

// EventType implements events.Content.
func (JoinRulesContent) EventType() events.EventType { return events.RoomJoinRules }

// UnmarshalJSON enforces the mandatory join_rule key.
func (c *JoinRulesContent) UnmarshalJSON(data []byte) error {
	type plain JoinRulesContent
	return events.UnmarshalContent(data, (*plain)(c), "join_rule")
}

// NameContent is the payload of an m.room.name event.
type NameContent struct {
	// Name is the name of the room. An empty string removes the name.
	Name string `json:"name"`
}

// EventType implements events.Content.
func (NameContent) EventType() events.EventType { return events.RoomName }

// UnmarshalJSON enforces the mandatory name key.
func (c *NameContent) UnmarshalJSON(data []byte) error {
	type plain NameContent
	return events.UnmarshalContent(data, (*plain)(c), "name")
}

// TopicContent is the payload of an m.room.topic event.
type TopicContent struct {
	Topic string `json:"topic"`
}

// EventType implements events.Content.
func (TopicContent) EventType() events.EventType { return events.RoomTopic }

// UnmarshalJSON enforces the mandatory topic key.
func (c *TopicContent) UnmarshalJSON(data []byte) error {
	type plain TopicContent
	return events.UnmarshalContent(data, (*plain)(c), "topic")
}
