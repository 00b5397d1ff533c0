package types

import "path/filepath"

// FileEntry is a path observed to be a regular file during a sweep.
// It lives for a single iteration.
type FileEntry struct {
	Path      string
	Extension string
	Size      int64
}

// Name returns the base name of the entry
func (e FileEntry) Name() string {
	return filepath.Base(e.Path)
}
