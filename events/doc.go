// Package events defines the envelope framework every event kind is built on.
//
// An event is a content payload wrapped in one of two envelope shapes:
//
//   - Event[C]: message-style, serialized as {"content", "type", "sender"}.
//   - StateEvent[C]: state-style, serialized as {"content", "type",
//     "state_key", "sender", "prev_content"} with prev_content omitted when
//     there is no prior state.
//
// The content type C carries its own discriminator through the Content
// interface, so an envelope can never be built with a type tag that disagrees
// with its content. Key order on output is fixed; peers compare events byte for
// byte.
//
// Content payloads follow one omission rule: optional fields are pointers (or
// other nil-able values) tagged omitempty, and their keys disappear from the
// output when nil. Mandatory fields are plain values and decoding fails with
// ErrMissingField when their key is absent or null. UnmarshalContent applies
// that rule for content authors:
//
//	func (c *Content) UnmarshalJSON(data []byte) error {
//	    type plain Content
//	    return events.UnmarshalContent(data, (*plain)(c), "presence")
//	}
//
// Decoding a wire event whose "type" names a different known kind than the
// content is tolerated by default: the content's own kind wins and the
// disagreement is logged at debug level. Pass StrictType(true) to reject it
// with ErrWrongEventType instead.
//
// Errors are reported as *FieldError values that match one of the sentinel
// errors with errors.Is: ErrMissingField, ErrTypeMismatch,
// ErrInvalidIdentifier, ErrUnknownDiscriminator or ErrWrongEventType.
package events
