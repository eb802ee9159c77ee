package codec

import (
	"fmt"

	"github.com/casualjim/mxevents/pkg/jsonx"
	json "github.com/goccy/go-json"
)

// binaryCodec carries the JSON wire form of a value in a binary encoding.
type binaryCodec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func (c *binaryCodec) Name() string { return c.name }

func (c *binaryCodec) Marshal(v any) ([]byte, error) {
	wire, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dyn, err := jsonx.ToDynamic(wire)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", c.name, err)
	}
	return c.marshal(dyn)
}

func (c *binaryCodec) Unmarshal(data []byte, v any) error {
	wire, err := c.ToJSON(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(wire, v)
}

func (c *binaryCodec) ToJSON(data []byte) ([]byte, error) {
	var dyn any
	if err := c.unmarshal(data, &dyn); err != nil {
		return nil, fmt.Errorf("codec: %s: %w", c.name, err)
	}
	wire, err := jsonx.FromDynamic(dyn)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", c.name, err)
	}
	return wire, nil
}
