package ref

import (
	"fmt"
	"reflect"

	"github.com/casualjim/mxevents/pkg/jsonx"
	"github.com/invopop/jsonschema"
)

// UserID is a validated user identifier such as "@example:localhost".
//
// UserID is an immutable value type. The zero value is not a valid user ID;
// use IsZero to check.
type UserID struct {
	id string
}

// ParseUserID validates and wraps a raw user ID string.
func ParseUserID(raw string) (UserID, error) {
	if _, _, err := parsePrefixedID(raw, '@', "user ID"); err != nil {
		return UserID{}, err
	}
	return UserID{id: raw}, nil
}

// MustParseUserID is like ParseUserID but panics on error. Use it in tests and
// static initialization where the input is known to be valid.
func MustParseUserID(raw string) UserID {
	u, err := ParseUserID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseUserID(%q): %v", raw, err))
	}
	return u
}

// String returns the full user ID.
func (u UserID) String() string { return u.id }

// IsZero reports whether u is the zero value.
func (u UserID) IsZero() bool { return u.id == "" }

// Equal reports whether both values hold the same user ID.
func (u UserID) Equal(other UserID) bool { return u.id == other.id }

// Localpart returns the part between the '@' sigil and the first ':'.
func (u UserID) Localpart() string {
	if u.id == "" {
		return ""
	}
	localpart, _, _ := parsePrefixedID(u.id, '@', "user ID")
	return localpart
}

// Server returns the server name, port included.
func (u UserID) Server() string {
	if u.id == "" {
		return ""
	}
	_, server, _ := parsePrefixedID(u.id, '@', "user ID")
	return server
}

// MarshalText implements encoding.TextMarshaler.
func (u UserID) MarshalText() ([]byte, error) {
	return []byte(u.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input is
// rejected like any other malformed user ID.
func (u *UserID) UnmarshalText(data []byte) error {
	parsed, err := ParseUserID(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// UnmarshalJSON accepts only a JSON string. null is rejected as an invalid
// user ID; any other JSON type is a type error.
func (u *UserID) UnmarshalJSON(data []byte) error {
	if jsonx.IsNull(data) {
		return fmt.Errorf("%w: user ID is null", ErrInvalidIdentifier)
	}
	raw, err := jsonx.String(data, reflect.TypeOf(u).Elem())
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(raw))
}

// JSONSchema describes the wire form of a user ID.
func (UserID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^@[^:]+:.+$`,
		Description: "user identifier (@localpart:server)",
	}
}
