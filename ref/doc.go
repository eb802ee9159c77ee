// Package ref holds validated protocol identifiers.
//
// Identifiers are immutable value types with unexported fields, so the only
// way to obtain a non-zero value is through a Parse function (or through
// UnmarshalText, which parses). Every parse failure wraps ErrInvalidIdentifier.
//
// The validation here is structural: a sigil, a non-empty localpart, a ':' and
// a server name that is a hostname, an IPv4 address or a bracketed IPv6
// literal, optionally followed by a port.
package ref
