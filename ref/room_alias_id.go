package ref

import (
	"fmt"
	"reflect"

	"github.com/casualjim/mxevents/pkg/jsonx"
	"github.com/invopop/jsonschema"
)

// RoomAliasID is a validated room alias such as "#somewhere:example.com".
//
// RoomAliasID is an immutable value type. The zero value is not a valid alias;
// use IsZero to check.
type RoomAliasID struct {
	alias string
}

// ParseRoomAliasID validates and wraps a raw room alias string.
func ParseRoomAliasID(raw string) (RoomAliasID, error) {
	if _, _, err := parsePrefixedID(raw, '#', "room alias"); err != nil {
		return RoomAliasID{}, err
	}
	return RoomAliasID{alias: raw}, nil
}

// MustParseRoomAliasID is like ParseRoomAliasID but panics on error.
func MustParseRoomAliasID(raw string) RoomAliasID {
	a, err := ParseRoomAliasID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseRoomAliasID(%q): %v", raw, err))
	}
	return a
}

// String returns the full alias.
func (a RoomAliasID) String() string { return a.alias }

// IsZero reports whether a is the zero value.
func (a RoomAliasID) IsZero() bool { return a.alias == "" }

// Equal reports whether both values hold the same alias.
func (a RoomAliasID) Equal(other RoomAliasID) bool { return a.alias == other.alias }

// Localpart returns the alias without the '#' sigil and the ':server' suffix.
func (a RoomAliasID) Localpart() string {
	if a.alias == "" {
		return ""
	}
	localpart, _, _ := parsePrefixedID(a.alias, '#', "room alias")
	return localpart
}

// Server returns the server name, port included.
func (a RoomAliasID) Server() string {
	if a.alias == "" {
		return ""
	}
	_, server, _ := parsePrefixedID(a.alias, '#', "room alias")
	return server
}

// MarshalText implements encoding.TextMarshaler.
func (a RoomAliasID) MarshalText() ([]byte, error) {
	return []byte(a.alias), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *RoomAliasID) UnmarshalText(data []byte) error {
	parsed, err := ParseRoomAliasID(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON accepts only a JSON string. null is rejected as an invalid
// room alias; any other JSON type is a type error.
func (a *RoomAliasID) UnmarshalJSON(data []byte) error {
	if jsonx.IsNull(data) {
		return fmt.Errorf("%w: room alias is null", ErrInvalidIdentifier)
	}
	raw, err := jsonx.String(data, reflect.TypeOf(a).Elem())
	if err != nil {
		return err
	}
	return a.UnmarshalText([]byte(raw))
}

// JSONSchema describes the wire form of a room alias.
func (RoomAliasID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^#[^:]+:.+$`,
		Description: "room alias (#alias:server)",
	}
}
