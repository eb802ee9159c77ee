// Package codec provides alternate encodings for events.
//
// JSON is the wire format. The binary codecs encode the JSON wire form of a
// value rather than its Go layout, so key names, omission and validation are
// the same in every encoding.
package codec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotRegistered is returned by Get for a name no codec is registered under.
var ErrNotRegistered = errors.New("codec not registered")

// Default is the wire format.
var Default = JSON

var registry = map[string]Codec{
	JSON.Name():    JSON,
	CBOR.Name():    CBOR,
	MsgPack.Name(): MsgPack,
}

// Codec encodes values to bytes and back.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// ToJSON converts encoded data into the JSON wire form.
	ToJSON(data []byte) ([]byte, error)
}

// Get returns the codec registered under name.
func Get(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return c, nil
}

// Names lists the registered codecs in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
