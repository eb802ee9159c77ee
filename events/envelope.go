package events

import (
	"fmt"

	"github.com/casualjim/mxevents/pkg/slogx"
	"github.com/casualjim/mxevents/ref"
	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var emptyObject = []byte(`{}`)

// Any is implemented by every envelope instantiation.
type Any interface {
	Type() EventType
	MarshalJSON() ([]byte, error)
	envelope()
}

var (
	_ Any = Event[Content]{}
	_ Any = StateEvent[Content]{}
)

// Event is a message-style envelope.
type Event[C Content] struct {
	Content C
	Sender  ref.UserID
}

// New wraps content sent by sender.
func New[C Content](content C, sender ref.UserID) Event[C] {
	return Event[C]{
		Content: content,
		Sender:  sender,
	}
}

func (Event[C]) envelope() {}

// Type returns the discriminator of C.
func (e Event[C]) Type() EventType {
	return contentType[C]()
}

// Equal reports structural equality. Nil and empty collections compare equal.
func (e Event[C]) Equal(other Event[C]) bool {
	return e.Sender.Equal(other.Sender) && cmp.Equal(e.Content, other.Content, cmpopts.EquateEmpty())
}

// MarshalJSON emits {"content":…,"type":…,"sender":…} in that order.
func (e Event[C]) MarshalJSON() ([]byte, error) {
	if e.Sender.IsZero() {
		return nil, missingField("sender")
	}

	result, err := setRaw(emptyObject, "content", e.Content)
	if err != nil {
		return nil, err
	}
	result, err = setRaw(result, "type", e.Type())
	if err != nil {
		return nil, err
	}
	return setRaw(result, "sender", e.Sender)
}

// UnmarshalJSON decodes with the default options.
func (e *Event[C]) UnmarshalJSON(data []byte) error {
	o, err := newDecodeOptions(nil)
	if err != nil {
		return err
	}
	return e.decode(data, &o)
}

// Decode parses a message-style wire event carrying content of type C.
func Decode[C Content](data []byte, options ...DecodeOption) (Event[C], error) {
	var e Event[C]
	o, err := newDecodeOptions(options)
	if err != nil {
		return e, err
	}
	if err := e.decode(data, &o); err != nil {
		return Event[C]{}, err
	}
	return e, nil
}

func (e *Event[C]) decode(data []byte, o *DecodeOptions) error {
	fields, err := parseObject(data)
	if err != nil {
		return err
	}

	content, err := decodeContent[C](fields, "content")
	if err != nil {
		return err
	}
	if err := checkType[C](fields, o); err != nil {
		return err
	}
	sender, err := decodeSender(fields)
	if err != nil {
		return err
	}

	e.Content = content
	e.Sender = sender
	return nil
}

func contentType[C Content]() EventType {
	var zero C
	return zero.EventType()
}

// setRaw appends key to the JSON object in doc. sjson appends new keys at the
// end, which is what keeps the envelope key order fixed.
func setRaw(doc []byte, key string, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return sjson.SetRawBytes(doc, key, raw)
}

func decodeContent[C Content](fields map[string]gjson.Result, key string) (C, error) {
	var content C

	raw, ok := fields[key]
	if !ok || raw.Type == gjson.Null {
		return content, missingField(key)
	}
	if !raw.IsObject() {
		return content, typeMismatch(key, fmt.Errorf("expected an object, got %s", raw.Type))
	}
	if err := json.Unmarshal([]byte(raw.Raw), &content); err != nil {
		return content, withPrefix(key, classify(err))
	}
	return content, nil
}

// checkType validates the wire discriminator against C. The content type is
// authoritative; a disagreeing but known tag is only an error in strict mode.
func checkType[C Content](fields map[string]gjson.Result, o *DecodeOptions) error {
	raw, ok := fields["type"]
	if !ok || raw.Type == gjson.Null {
		return missingField("type")
	}
	if raw.Type != gjson.String {
		return typeMismatch("type", fmt.Errorf("expected a string, got %s", raw.Type))
	}

	wire, ok := eventTypes.Lookup(raw.String())
	if !ok {
		return &FieldError{Field: "type", Kind: ErrUnknownDiscriminator, Err: fmt.Errorf("%q is not a supported event type", raw.String())}
	}

	want := contentType[C]()
	if wire == want {
		return nil
	}
	if o.strictType {
		return &FieldError{Field: "type", Kind: ErrWrongEventType, Err: fmt.Errorf("got %s, content is %s", wire, want)}
	}
	o.logger.Debug("wire event type disagrees with content, using content type",
		slogx.Stringer("wire_type", wire),
		slogx.Stringer("content_type", want),
		slogx.Truncated("content", []byte(fields["content"].Raw), 256),
	)
	return nil
}

func decodeSender(fields map[string]gjson.Result) (ref.UserID, error) {
	raw, ok := fields["sender"]
	if !ok || raw.Type == gjson.Null {
		return ref.UserID{}, missingField("sender")
	}
	if raw.Type != gjson.String {
		return ref.UserID{}, typeMismatch("sender", fmt.Errorf("expected a string, got %s", raw.Type))
	}
	sender, err := ref.ParseUserID(raw.String())
	if err != nil {
		return ref.UserID{}, &FieldError{Field: "sender", Kind: ErrInvalidIdentifier, Err: err}
	}
	return sender, nil
}
