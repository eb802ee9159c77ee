package mxevents

import (
	"fmt"

	"github.com/casualjim/mxevents/events"
	"github.com/casualjim/mxevents/ref"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Unknown keys are ignored on decode, so the schemas allow them too.
var reflector = jsonschema.Reflector{
	AllowAdditionalProperties: true,
	DoNotReference:            true,
	Anonymous:                 true,
}

// ContentSchema returns the JSON schema of the content of kind t. Mandatory
// keys are listed as required; optional ones may be absent.
func ContentSchema(t events.EventType) (*jsonschema.Schema, error) {
	k, ok := kinds[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", events.ErrUnknownDiscriminator, t)
	}
	return contentSchema(k), nil
}

// EnvelopeSchema returns the JSON schema of a complete wire event of kind t.
func EnvelopeSchema(t events.EventType) (*jsonschema.Schema, error) {
	k, ok := kinds[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", events.ErrUnknownDiscriminator, t)
	}

	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("content", contentSchema(k))
	props.Set("type", &jsonschema.Schema{Type: "string", Const: t.String()})
	if k.state {
		props.Set("state_key", &jsonschema.Schema{Type: "string"})
	}
	props.Set("sender", ref.UserID{}.JSONSchema())
	if k.state {
		props.Set("prev_content", contentSchema(k))
	}

	return &jsonschema.Schema{
		Version:    jsonschema.Version,
		Title:      t.String(),
		Type:       "object",
		Properties: props,
		Required:   []string{"content", "type", "sender"},
	}, nil
}

func contentSchema(k kind) *jsonschema.Schema {
	s := reflector.Reflect(k.content)
	s.Version = ""
	return s
}
