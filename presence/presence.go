// Package presence defines the m.presence event.
package presence

import (
	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/pkg/enumx"
	"github.com/invopop/jsonschema"
)

// Event informs the client of a user's presence state change.
type Event = events.Event[Content]

// Content is the payload of an m.presence event.
type Content struct {
	// AvatarURL is the current avatar URL for this user.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// CurrentlyActive reports whether the user is currently active.
	CurrentlyActive *bool `json:"currently_active,omitempty"`

	// DisplayName is the current display name for this user.
	DisplayName *string `json:"displayname,omitempty"`

	// LastActiveAgo is the time since this user last performed some action,
	// in milliseconds.
	LastActiveAgo *uint64 `json:"last_active_ago,omitempty"`

	// Presence is the presence state for this user.
	Presence State `json:"presence"`

	// StatusMsg is an optional description to accompany the presence.
	StatusMsg *string `json:"status_msg,omitempty"`
}

// EventType implements events.Content.
func (Content) EventType() events.EventType { return events.Presence }

// UnmarshalJSON enforces the mandatory presence key.
func (c *Content) UnmarshalJSON(data []byte) error {
	type plain Content
	return events.UnmarshalContent(data, (*plain)(c), "presence")
}

// State describes a user's connectivity and availability for chat.
//
// The zero value is reserved: it is what decoding yields for a wire value this
// package does not know yet. It is never serialized.
type State uint8

const (
	stateNonexhaustive State = iota

	// Offline means disconnected from the service.
	Offline
	// Online means connected to the service.
	Online
	// Unavailable means connected to the service but not available for chat.
	Unavailable
)

var states = enumx.NewTable("presence state", stateNonexhaustive,
	enumx.Entry[State]{Value: Offline, Wire: "offline"},
	enumx.Entry[State]{Value: Online, Wire: "online"},
	enumx.Entry[State]{Value: Unavailable, Wire: "unavailable"},
)

// IsKnown reports whether s is a named state rather than the catch-all.
func (s State) IsKnown() bool { return states.Known(s) }

// String returns the wire string, or "unknown" for the catch-all.
func (s State) String() string {
	if !s.IsKnown() {
		return "unknown"
	}
	return states.Wire(s)
}

// MarshalText implements encoding.TextMarshaler. It panics on the catch-all.
func (s State) MarshalText() ([]byte, error) {
	return []byte(states.Wire(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode to
// the catch-all instead of failing.
func (s *State) UnmarshalText(data []byte) error {
	*s = states.Parse(string(data))
	return nil
}

// UnmarshalJSON is UnmarshalText for JSON input. A token that is not a string
// is a type error.
func (s *State) UnmarshalJSON(data []byte) error {
	v, err := states.ParseJSON(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// JSONSchema describes the wire values of State.
func (State) JSONSchema() *jsonschema.Schema {
	return states.JSONSchema()
}
