package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Find returns the root-relative path of every stored file matching a glob
// pattern, e.g. "saves/**/*.json". Matching is against root-relative paths;
// an absent root yields no matches. Result order is unspecified.
func (s *Store) Find(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &IOError{Op: "find", Path: pattern, Err: doublestar.ErrBadPattern}
	}

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, s.root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(s.root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			mu.Lock()
			matches = append(matches, rel)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return matches, nil
		}
		return nil, &IOError{Op: "find", Path: pattern, Err: err}
	}
	return matches, nil
}
