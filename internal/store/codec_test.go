package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "json", r.ForPath("config.json").Name())
	assert.Equal(t, "json", r.ForPath("a/b/c.json").Name())
	assert.Equal(t, "cbor", r.ForPath("slot1.bin").Name())
	assert.Equal(t, "cbor", r.ForPath("noext").Name())
	assert.Equal(t, "cbor", r.ForPath("config.JSON").Name(), "matching is case-sensitive")
	assert.Equal(t, "cbor", r.ForPath("dir.json/leaf").Name(), "only the leaf extension counts")
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("yaml", YAML)

	assert.Equal(t, "yaml", r.ForPath("settings.yaml").Name())
	assert.Equal(t, "json", r.ForPath("settings.json").Name(), "default mapping untouched")
}

func TestJSONRoundTrip(t *testing.T) {
	value := map[string]interface{}{
		"name":  "slot one",
		"level": float64(12),
		"alive": true,
		"gear":  []interface{}{"sword", "shield"},
	}

	data, err := JSON.Encode(value)
	require.NoError(t, err)

	got, err := JSON.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestJSONRejectsNaN(t *testing.T) {
	_, err := JSON.Encode(math.NaN())
	assert.Error(t, err)
}

func TestJSONDecodeMalformed(t *testing.T) {
	_, err := JSON.Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestOpaqueRoundTrip(t *testing.T) {
	value := map[string]interface{}{
		"name":  "slot one",
		"level": int64(12),
		"alive": true,
	}

	data, err := Opaque.Encode(value)
	require.NoError(t, err)

	got, err := Opaque.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestOpaqueSupportsNaN(t *testing.T) {
	data, err := Opaque.Encode(math.NaN())
	require.NoError(t, err)

	got, err := Opaque.Decode(data)
	require.NoError(t, err)
	f, ok := got.(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestOpaqueSupportsBytes(t *testing.T) {
	blob := []byte{0x00, 0x01, 0xFF, 0xFE}

	data, err := Opaque.Encode(blob)
	require.NoError(t, err)

	got, err := Opaque.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestOpaqueDecodeMalformed(t *testing.T) {
	_, err := Opaque.Decode([]byte{0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	value := map[string]interface{}{"name": "zelda", "difficulty": "hard"}

	data, err := YAML.Encode(value)
	require.NoError(t, err)

	got, err := YAML.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestTOMLRoundTrip(t *testing.T) {
	value := map[string]interface{}{"name": "link", "region": "eu"}

	data, err := TOML.Encode(value)
	require.NoError(t, err)

	got, err := TOML.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}
