package room

import (
	"github.com/casualjim/mxevents/events"
)

// MemberEvent adjusts the membership state for a user in a room. The state
// key is the user ID whose membership changes.
type MemberEvent = events.StateEvent[MemberContent]

// MemberContent is the payload of an m.room.member event.
type MemberContent struct {
	// AvatarURL is the avatar URL for this user.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// DisplayName is the display name for this user.
	DisplayName *string `json:"displayname,omitempty"`

	// IsDirect flags the room as a direct chat when it accompanies an invite.
	IsDirect *bool `json:"is_direct,omitempty"`

	// Membership is the membership state of this user.
	Membership Membership `json:"membership"`
}

// EventType implements events.Content.
func (MemberContent) EventType() events.EventType { return events.RoomMember }

// UnmarshalJSON enforces the mandatory membership key.
func (c *MemberContent) UnmarshalJSON(data []byte) error {
	type plain MemberContent
	return events.UnmarshalContent(data, (*plain)(c), "membership")
}
