package codec

import (
	"errors"

	json "github.com/goccy/go-json"
)

// JSON is the wire format itself. ToJSON only validates its input.
var JSON Codec = &jsonCodec{}

type jsonCodec struct{}

func (*jsonCodec) Name() string { return "json" }

func (*jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (*jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (*jsonCodec) ToJSON(data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, errors.New("codec: invalid json")
	}
	return data, nil
}
