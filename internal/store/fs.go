package store

import (
	"io"
	"os"
)

// FileWriter is the handle returned by FS.Create. Written bytes are forced to
// stable storage with Sync before Close; the store closes the handle on every
// exit path.
type FileWriter interface {
	io.Writer
	Sync() error
	Close() error
}

// FS is the filesystem collaborator behind the store: directory iteration,
// attribute queries, single-directory creation, and whole-file I/O. The
// default implementation delegates to the os package; tests substitute fakes
// to inject faults without touching a real disk.
type FS interface {
	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)
	// Stat returns attribute metadata, or an error if nothing exists there.
	Stat(path string) (os.FileInfo, error)
	// Mkdir creates a single directory; the parent must already exist.
	Mkdir(path string) error
	// ReadFile reads an entire file and closes it.
	ReadFile(path string) ([]byte, error)
	// Create opens a file for writing, creating it if absent and truncating
	// it if present.
	Create(path string) (FileWriter, error)
}

type osFS struct{}

func (osFS) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (osFS) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (osFS) Mkdir(path string) error                    { return os.Mkdir(path, 0o755) }
func (osFS) ReadFile(path string) ([]byte, error)       { return os.ReadFile(path) }

func (osFS) Create(path string) (FileWriter, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}
