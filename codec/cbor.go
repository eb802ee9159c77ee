package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys and
// shortest integer forms, so equal events encode to identical bytes.
var CBOR Codec = &binaryCodec{
	name:      "cbor",
	marshal:   cborEnc.Marshal,
	unmarshal: cborDec.Unmarshal,
}

var (
	cborEnc = mustEncMode()
	cborDec = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	return em
}

// Decoding into any must produce map[string]any, which is what the JSON
// encoder expects.
func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
	return dm
}
