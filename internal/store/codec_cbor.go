package store

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Opaque is the default codec: CBOR (RFC 8949) binary encoding. It represents
// a superset of the structured subset, including byte strings and
// NaN/Infinity floats, and is the strategy for every key whose extension has
// no structured mapping.
var Opaque Codec = newCBORCodec()

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBORCodec() cborCodec {
	enc, err := cbor.EncOptions{}.EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{
		// Decode maps as map[string]interface{} and integers as int64 so
		// decoded trees are shaped like the values callers wrote.
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return cborCodec{enc: enc, dec: dec}
}

func (c cborCodec) Name() string { return "cbor" }

func (c cborCodec) Encode(value interface{}) ([]byte, error) {
	return c.enc.Marshal(value)
}

func (c cborCodec) Decode(data []byte) (interface{}, error) {
	var value interface{}
	if err := c.dec.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
