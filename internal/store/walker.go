package store

import (
	"os"
	"path/filepath"
)

// listAll enumerates every stored file beneath the root, breadth-first.
// The queue holds directory paths relative to the root, each with a trailing
// separator ("" is the root itself); an index cursor walks the queue instead
// of re-slicing its front, so deep trees stay linear.
func (s *Store) listAll() ([]string, error) {
	paths := []string{}
	queue := []string{""}
	for head := 0; head < len(queue); head++ {
		prefix := queue[head]
		entries, err := s.fs.ReadDir(filepath.Join(s.root, filepath.FromSlash(prefix)))
		if err != nil {
			if prefix == "" && os.IsNotExist(err) {
				// Root not materialized yet: nothing has been stored.
				return paths, nil
			}
			return nil, &IOError{Op: "readdir", Path: prefix, Err: err}
		}
		for _, entry := range entries {
			rel := prefix + entry.Name()
			switch {
			case entry.IsDir():
				queue = append(queue, rel+Separator)
			case entry.Type().IsRegular():
				paths = append(paths, rel)
			}
			// Symlinks and other special entries are skipped.
		}
	}
	return paths, nil
}
