package room

import (
	"github.com/casualjim/mxevents/events"
)

// AvatarEvent sets the picture associated with a room.
type AvatarEvent = events.StateEvent[AvatarContent]

// AvatarContent is the payload of an m.room.avatar event.
type AvatarContent struct {
	// URL of the image.
	URL string `json:"url"`

	// Info describes the image.
	Info *ImageInfo `json:"info,omitempty"`
}

// EventType implements events.Content.
func (AvatarContent) EventType() events.EventType { return events.RoomAvatar }

// UnmarshalJSON enforces the mandatory url key.
func (c *AvatarContent) UnmarshalJSON(data []byte) error {
	type plain AvatarContent
	return events.UnmarshalContent(data, (*plain)(c), "url")
}

// ImageInfo is metadata about an image.
type ImageInfo struct {
	// Height is the height of the image in pixels.
	Height *uint64 `json:"h,omitempty"`

	// Width is the width of the image in pixels.
	Width *uint64 `json:"w,omitempty"`

	// MimeType is the MIME type of the image, e.g. "image/png".
	MimeType *string `json:"mimetype,omitempty"`

	// Size is the file size of the image in bytes.
	Size *uint64 `json:"size,omitempty"`
}
