package store

import (
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/lanternworks/savestore/internal/platform"
)

// Store is a persistent key/value store rooted at a per-project save
// directory. The root is resolved once at construction and never changes for
// the lifetime of the store; all keys resolve beneath it.
type Store struct {
	project string
	root    string
	codecs  *Registry
	fs      FS
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFS substitutes the filesystem collaborator.
func WithFS(fs FS) Option {
	return func(s *Store) { s.fs = fs }
}

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCodec registers an additional structured codec for an extension token.
func WithCodec(ext string, c Codec) Option {
	return func(s *Store) { s.codecs.Register(ext, c) }
}

// New resolves the platform save directory for project and returns a store
// rooted there.
func New(project string, opts ...Option) (*Store, error) {
	root, err := platform.SavePath(runtime.GOOS, project)
	if err != nil {
		return nil, err
	}
	return NewAt(project, root, opts...), nil
}

// NewAt returns a store rooted at an explicit directory, bypassing platform
// resolution. Used by tests and by deployments overriding the save root.
func NewAt(project, root string, opts ...Option) *Store {
	s := &Store{
		project: project,
		root:    root,
		codecs:  NewRegistry(),
		fs:      osFS{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project returns the project identifier the store was created for.
func (s *Store) Project() string { return s.project }

// Root returns the resolved absolute save root.
func (s *Store) Root() string { return s.root }

// Write encodes value with the codec selected by path's extension and stores
// it at path, creating missing ancestor directories first. The data is forced
// to stable storage before Write returns, so an immediately subsequent Read
// observes it. The file handle is closed on every exit path.
func (s *Store) Write(path string, value interface{}) error {
	if err := s.ensureDirectories(Split(path)); err != nil {
		return err
	}
	f, err := s.fs.Create(s.abs(path))
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	codec := s.codecs.ForPath(path)
	data, err := codec.Encode(value)
	if err != nil {
		f.Close()
		return &EncodeError{Path: path, Codec: codec.Name(), Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	s.logger.Debug("entry written",
		zap.String("path", path),
		zap.String("codec", codec.Name()),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Read loads and decodes the value stored at path. A key with no stored
// entry fails with NotFoundError before any open is attempted.
func (s *Store) Read(path string) (interface{}, error) {
	if !s.Exists(path) {
		return nil, &NotFoundError{Path: path}
	}
	data, err := s.fs.ReadFile(s.abs(path))
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	codec := s.codecs.ForPath(path)
	value, err := codec.Decode(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Codec: codec.Name(), Err: err}
	}
	return value, nil
}

// Exists reports whether any entry, file or directory, exists at path.
// It never fails: an unanswerable query counts as absent.
func (s *Store) Exists(path string) bool {
	_, err := s.fs.Stat(s.abs(path))
	return err == nil
}

// List returns the root-relative path of every stored file, in breadth-first
// discovery order. An empty or absent root yields an empty slice.
func (s *Store) List() ([]string, error) {
	return s.listAll()
}

func (s *Store) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}
