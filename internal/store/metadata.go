package store

import (
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// EntryInfo describes a stored entry.
type EntryInfo struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	IsDir       bool      `json:"is_dir"`
	Modified    time.Time `json:"modified"`
	Extension   string    `json:"extension,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
}

// Stat returns metadata for the entry at path, including a sniffed content
// type for regular files.
func (s *Store) Stat(path string) (*EntryInfo, error) {
	abs := s.abs(path)
	info, err := s.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	entry := &EntryInfo{
		Path:      path,
		Size:      info.Size(),
		IsDir:     info.IsDir(),
		Modified:  info.ModTime(),
		Extension: Split(path).Extension(),
	}
	if !info.IsDir() {
		if mt, err := mimetype.DetectFile(abs); err == nil {
			entry.ContentType = mt.String()
		}
	}
	return entry, nil
}
