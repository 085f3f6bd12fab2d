package store

import (
	"errors"
	"path/filepath"
)

var errNotADirectory = errors.New("path segment exists as a file")

// ensureDirectories creates every missing ancestor directory for the given
// components in root-to-leaf order. Creation is never recursive: each
// segment's parent is the previous iteration's target, which was just created
// or already existed. Pre-existing directories are success; the first real
// failure stops the loop and is reported without attempting later segments.
func (s *Store) ensureDirectories(c Components) error {
	current := s.root
	for _, dir := range c.Dirs {
		current = filepath.Join(current, dir)
		info, err := s.fs.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return &IOError{Op: "mkdir", Path: current, Err: errNotADirectory}
			}
			continue
		}
		if err := s.fs.Mkdir(current); err != nil {
			return &IOError{Op: "mkdir", Path: current, Err: err}
		}
	}
	return nil
}
