// Package store implements a per-project persistent key/value store backed
// directly by the host filesystem.
//
// Keys are slash-separated relative paths; values are structured data. Each
// key is materialized as a real file beneath the store's resolved save root,
// with missing ancestor directories created lazily on write.
//
// The codec used for a key is selected by its extension:
//   - .json: structured, human-readable JSON text
//   - everything else (including no extension): opaque CBOR binary
//
// Additional structured formats (YAML, TOML) can be registered per store via
// WithCodec; the default mapping recognizes exactly one structured format.
//
// Operations:
//   - Write: materialize directories, encode, write, flush to stable storage
//   - Read: existence check, read, decode
//   - Exists: filesystem probe, never fails
//   - List: breadth-first enumeration of every stored file
//   - Stat, Find: metadata and glob search over stored entries
//
// The store is synchronous and takes no in-process locks; callers needing
// concurrency wrap it externally. Files and directories are never deleted or
// renamed by this package.
package store
