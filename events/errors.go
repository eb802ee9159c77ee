package events

import (
	"errors"
	"strings"

	"github.com/casualjim/mxevents/ref"
	json "github.com/goccy/go-json"
)

var (
	// ErrMissingField is returned when a mandatory key is absent (or null).
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch is returned when a wire value has the wrong JSON type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidIdentifier is returned when an identifier field fails
	// validation.
	ErrInvalidIdentifier = ref.ErrInvalidIdentifier

	// ErrUnknownDiscriminator is returned when an event type string does not
	// name a supported kind.
	ErrUnknownDiscriminator = errors.New("unknown event type")

	// ErrWrongEventType is returned in strict mode when the wire type names a
	// different kind than the content being decoded.
	ErrWrongEventType = errors.New("event type does not match content")
)

// FieldError reports a decoding or encoding failure for one field.
//
// Field is a dotted path relative to the envelope ("content.presence") and
// is empty when the failure concerns the document as a whole. Kind is one of
// the package sentinels; Err, when set, is the underlying cause.
type FieldError struct {
	Field string
	Kind  error
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Field != "" {
		b.WriteString(" '")
		b.WriteString(e.Field)
		b.WriteByte('\'')
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and
// errors.As.
func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func missingField(field string) error {
	return &FieldError{Field: field, Kind: ErrMissingField}
}

func typeMismatch(field string, err error) error {
	return &FieldError{Field: field, Kind: ErrTypeMismatch, Err: err}
}

// withPrefix roots the field path of a *FieldError under prefix.
func withPrefix(prefix string, err error) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	if cp.Field == "" {
		cp.Field = prefix
	} else {
		cp.Field = prefix + "." + cp.Field
	}
	return &cp
}

// classify maps a decoder failure onto the error taxonomy. Errors that are
// already classified pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	if errors.Is(err, ref.ErrInvalidIdentifier) {
		return &FieldError{Kind: ErrInvalidIdentifier, Err: err}
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &FieldError{Field: te.Field, Kind: ErrTypeMismatch, Err: err}
	}
	return &FieldError{Kind: ErrTypeMismatch, Err: err}
}
