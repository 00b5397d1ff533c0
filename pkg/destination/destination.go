// Package destination computes collision-free paths inside a category folder.
package destination

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sortdl/pkg/classify"
	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/types"
)

// DefaultMaxSuffix bounds the disambiguation counter.
const DefaultMaxSuffix = 10000

// Resolver probes an FS for the first unused name. It never mutates the
// filesystem, so its answer can be stale by the time a caller writes.
type Resolver struct {
	FS        types.FS
	MaxSuffix int

	// Taken, when set, marks paths as used even though they are absent
	// from FS. A dry run uses it to reserve names it has already planned.
	Taken func(path string) bool
}

// NewResolver returns a Resolver with the default suffix bound
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{FS: fsys, MaxSuffix: DefaultMaxSuffix}
}

// Resolve is NewResolver(fsys).Resolve(folder, filename)
func Resolve(fsys types.FS, folder, filename string) (string, error) {
	return NewResolver(fsys).Resolve(folder, filename)
}

// Resolve returns folder/filename if unused, otherwise the first unused
// folder/{stem}_{n}{ext} for n starting at 1.
func (r *Resolver) Resolve(folder, filename string) (string, error) {
	candidate := filepath.Join(folder, filename)
	taken, err := r.exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	limit := r.MaxSuffix
	if limit <= 0 {
		limit = DefaultMaxSuffix
	}

	stem, ext := classify.SplitName(filename)
	for n := 1; n <= limit; n++ {
		candidate = filepath.Join(folder, fmt.Sprintf("%s_%d%s", stem, n, ext))
		taken, err = r.exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrResolutionExhausted,
		"no free name for %s in %s after %d attempts", filename, folder, limit).
		WithDetail("folder", folder).
		WithDetail("filename", filename)
}

// exists uses Lstat so a dangling symlink still counts as taken
func (r *Resolver) exists(path string) (bool, error) {
	if r.Taken != nil && r.Taken(path) {
		return true, nil
	}
	_, err := r.FS.Lstat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot probe %s", path)
}
