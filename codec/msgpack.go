package codec

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack encodes the JSON wire form as MessagePack.
var MsgPack Codec = &binaryCodec{
	name:      "msgpack",
	marshal:   msgpack.Marshal,
	unmarshal: msgpack.Unmarshal,
}
