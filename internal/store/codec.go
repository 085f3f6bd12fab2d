package store

// Codec is one encoding strategy for stored values. Encode is used on write,
// Decode on read; both operate on the raw byte stream of the backing file.
type Codec interface {
	Name() string
	Encode(value interface{}) ([]byte, error)
	Decode(data []byte) (interface{}, error)
}

// Registry maps extension tokens to codec strategies. Matching is exact and
// case-sensitive; unknown and missing extensions fall through to the opaque
// codec.
type Registry struct {
	byExt  map[string]Codec
	opaque Codec
}

// NewRegistry returns the default registry: "json" selects the structured
// JSON codec, everything else selects opaque CBOR.
func NewRegistry() *Registry {
	return &Registry{
		byExt:  map[string]Codec{"json": JSON},
		opaque: Opaque,
	}
}

// Register maps an extension token (without the leading dot) to a codec.
// Registering an already-mapped token replaces the previous strategy.
func (r *Registry) Register(ext string, c Codec) {
	r.byExt[ext] = c
}

// ForPath selects the codec for a key path. Pure and total: it never fails.
func (r *Registry) ForPath(path string) Codec {
	if c, ok := r.byExt[Split(path).Extension()]; ok {
		return c
	}
	return r.opaque
}
