package store

import (
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// YAML and TOML are additional structured strategies. They are not in the
// default extension mapping; opt in per store:
//
//	st, err := store.New("myproject", store.WithCodec("yaml", store.YAML))
var (
	YAML Codec = yamlCodec{}
	TOML Codec = tomlCodec{}
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(value interface{}) ([]byte, error) {
	return yaml.Marshal(value)
}

func (yamlCodec) Decode(data []byte) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Encode(value interface{}) ([]byte, error) {
	return toml.Marshal(value)
}

func (tomlCodec) Decode(data []byte) (interface{}, error) {
	// TOML documents are tables at the top level.
	var value map[string]interface{}
	if err := toml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
