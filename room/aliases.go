package room

import (
	"errors"
	"fmt"

	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/ref"
	json "github.com/goccy/go-json"
)

// AliasesEvent informs the room about what room aliases it has been given.
// The state key is the homeserver that owns the aliases.
type AliasesEvent = events.StateEvent[AliasesContent]

// AliasesContent is the payload of an m.room.aliases event.
type AliasesContent struct {
	// Aliases is the list of room aliases. It is always serialized, as [] when
	// empty.
	Aliases []ref.RoomAliasID `json:"aliases"`
}

// EventType implements events.Content.
func (AliasesContent) EventType() events.EventType { return events.RoomAliases }

// MarshalJSON writes a nil alias list as [].
func (c AliasesContent) MarshalJSON() ([]byte, error) {
	type plain AliasesContent
	if c.Aliases == nil {
		c.Aliases = []ref.RoomAliasID{}
	}
	return json.Marshal(plain(c))
}

// UnmarshalJSON enforces the mandatory aliases key. Every element must be a
// valid alias; null entries are rejected.
func (c *AliasesContent) UnmarshalJSON(data []byte) error {
	type plain AliasesContent
	if err := events.UnmarshalContent(data, (*plain)(c), "aliases"); err != nil {
		return err
	}
	for i, alias := range c.Aliases {
		if alias.IsZero() {
			return &events.FieldError{
				Field: fmt.Sprintf("aliases.%d", i),
				Kind:  events.ErrInvalidIdentifier,
				Err:   errors.New("room alias is null"),
			}
		}
	}
	return nil
}
