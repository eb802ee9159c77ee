package room

import (
	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/ref"
)

// CreateEvent is the first event in a room and cannot be changed.
type CreateEvent = events.StateEvent[CreateContent]

// CreateContent is the payload of an m.room.create event.
type CreateContent struct {
	// Creator is the user who created the room.
	Creator ref.UserID `json:"creator"`

	// Federate reports whether users on other servers can join the room.
	// Absent means true.
	Federate *bool `json:"m.federate,omitempty"`
}

// EventType implements events.Content.
func (CreateContent) EventType() events.EventType { return events.RoomCreate }

// UnmarshalJSON enforces the mandatory creator key.
func (c *CreateContent) UnmarshalJSON(data []byte) error {
	type plain CreateContent
	return events.UnmarshalContent(data, (*plain)(c), "creator")
}

// Federated resolves the absent default of Federate.
func (c CreateContent) Federated() bool {
	return c.Federate == nil || *c.Federate
}
