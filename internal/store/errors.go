package store

import (
	"errors"
	"fmt"
)

// NotFoundError reports a read of a key with no stored entry. It is raised
// eagerly, before any attempt to open the underlying file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no saved entry at %q", e.Path)
}

// IOError reports a directory or file operation failing at the OS boundary.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// EncodeError reports a value the selected codec cannot serialize.
type EncodeError struct {
	Path  string
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s as %s: %v", e.Path, e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports stored bytes the selected codec cannot parse.
type DecodeError struct {
	Path  string
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s as %s: %v", e.Path, e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
