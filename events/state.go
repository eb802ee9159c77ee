package events

import (
	"fmt"

	"github.com/casualjim/mxevents/ref"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tidwall/gjson"
)

// StateEvent is a state-style envelope. StateKey is the empty string unless
// the kind keys its state by something else (room membership uses the target
// user ID). PrevContent is nil unless the prior state was supplied.
type StateEvent[C Content] struct {
	Content     C
	StateKey    string
	Sender      ref.UserID
	PrevContent *C
}

// NewState wraps content sent by sender under stateKey.
func NewState[C Content](content C, sender ref.UserID, stateKey string) StateEvent[C] {
	return StateEvent[C]{
		Content:  content,
		StateKey: stateKey,
		Sender:   sender,
	}
}

// WithPrevContent returns a copy of e that carries the prior state.
func (e StateEvent[C]) WithPrevContent(prev C) StateEvent[C] {
	e.PrevContent = &prev
	return e
}

func (StateEvent[C]) envelope() {}

// Type returns the discriminator of C.
func (e StateEvent[C]) Type() EventType {
	return contentType[C]()
}

// Equal reports structural equality. Nil and empty collections compare equal.
func (e StateEvent[C]) Equal(other StateEvent[C]) bool {
	return e.StateKey == other.StateKey &&
		e.Sender.Equal(other.Sender) &&
		cmp.Equal(e.Content, other.Content, cmpopts.EquateEmpty()) &&
		cmp.Equal(e.PrevContent, other.PrevContent, cmpopts.EquateEmpty())
}

// MarshalJSON emits content, type, state_key, sender and, when present,
// prev_content, in that order.
func (e StateEvent[C]) MarshalJSON() ([]byte, error) {
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
	result, err = setRaw(result, "state_key", e.StateKey)
	if err != nil {
		return nil, err
	}
	result, err = setRaw(result, "sender", e.Sender)
	if err != nil {
		return nil, err
	}

	if e.PrevContent != nil {
		result, err = setRaw(result, "prev_content", *e.PrevContent)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UnmarshalJSON decodes with the default options.
func (e *StateEvent[C]) UnmarshalJSON(data []byte) error {
	o, err := newDecodeOptions(nil)
	if err != nil {
		return err
	}
	return e.decode(data, &o)
}

// DecodeState parses a state-style wire event carrying content of type C.
func DecodeState[C Content](data []byte, options ...DecodeOption) (StateEvent[C], error) {
	var e StateEvent[C]
	o, err := newDecodeOptions(options)
	if err != nil {
		return e, err
	}
	if err := e.decode(data, &o); err != nil {
		return StateEvent[C]{}, err
	}
	return e, nil
}

func (e *StateEvent[C]) decode(data []byte, o *DecodeOptions) error {
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

	var stateKey string
	if raw, ok := fields["state_key"]; ok && raw.Type != gjson.Null {
		if raw.Type != gjson.String {
			return typeMismatch("state_key", fmt.Errorf("expected a string, got %s", raw.Type))
		}
		stateKey = raw.String()
	}

	sender, err := decodeSender(fields)
	if err != nil {
		return err
	}

	var prev *C
	if raw, ok := fields["prev_content"]; ok && raw.Type != gjson.Null {
		p, err := decodeContent[C](fields, "prev_content")
		if err != nil {
			return err
		}
		prev = &p
	}

	e.Content = content
	e.StateKey = stateKey
	e.Sender = sender
	e.PrevContent = prev
	return nil
}
