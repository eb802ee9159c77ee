/*
Package mxevents decodes Matrix events whose kind is only known at runtime.

The typed envelopes live in the events package and the content payloads in
presence and room. When the caller already knows the kind, decoding straight
into the envelope alias is simplest:

	var ev room.MemberEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return err
	}

When it does not, Unmarshal reads the "type" key and picks the envelope:

	ev, err := mxevents.Unmarshal(data)
	if errors.Is(err, events.ErrUnknownDiscriminator) {
		// a kind this version does not model, skip it
	}
	switch ev := ev.(type) {
	case presence.Event:
		...
	case room.TopicEvent:
		...
	}

# Schemas

ContentSchema and EnvelopeSchema export JSON schemas for every supported kind,
generated from the Go types with invopop/jsonschema. Envelope properties keep
the wire order: content, type, state_key, sender, prev_content.
*/
package mxevents
