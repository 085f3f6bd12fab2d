package store

import "github.com/bytedance/sonic"

// JSON is the structured codec: human-readable JSON text covering the
// primitive value tree (maps, slices, numbers, strings, booleans, null).
// Values outside that subset (NaN floats, channels, funcs) are rejected
// with an encode error.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(value interface{}) ([]byte, error) {
	// ConfigStd keeps encoding/json semantics, including rejection of
	// unrepresentable values.
	return sonic.ConfigStd.MarshalIndent(value, "", "  ")
}

func (jsonCodec) Decode(data []byte) (interface{}, error) {
	var value interface{}
	if err := sonic.ConfigStd.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
