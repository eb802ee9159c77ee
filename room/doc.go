// Package room defines the m.room.* state events.
//
// Every content type implements events.Content and has a matching envelope
// alias, so decoding an avatar change is
//
//	var ev room.AvatarEvent
//	err := json.Unmarshal(data, &ev)
package room
