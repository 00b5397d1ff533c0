package testutil

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/sortdl/pkg/types"
)

// ErrInjected is returned by FaultyFS for every simulated failure
var ErrInjected = errors.New("injected failure")

// FaultyFS wraps a types.FS and injects failures for selected paths.
// Nil hooks pass straight through.
type FaultyFS struct {
	types.FS

	// FailOpenFile makes OpenFile fail for matching names
	FailOpenFile func(name string) bool

	// FailWriteAfter makes writes to files opened through OpenFile fail once
	// this many bytes were written. Negative disables.
	FailWriteAfter int

	// FailRemove makes Remove fail for matching names
	FailRemove func(name string) bool

	// FailMkdir makes Mkdir fail for matching names
	FailMkdir func(name string) bool

	// BeforeOpenFile runs before OpenFile is forwarded, letting a test
	// create a competing file between resolution and copy.
	BeforeOpenFile func(name string)

	// Corrupt flips the first byte written to files opened through OpenFile
	Corrupt bool
}

// NewFaultyFS wraps base with no faults configured
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, FailWriteAfter: -1}
}

func (f *FaultyFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	if f.BeforeOpenFile != nil {
		f.BeforeOpenFile(name)
	}
	if f.FailOpenFile != nil && f.FailOpenFile(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrInjected}
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if f.FailWriteAfter < 0 && !f.Corrupt {
		return file, nil
	}
	return &faultyFile{File: file, limit: f.FailWriteAfter, corrupt: f.Corrupt}, nil
}

func (f *FaultyFS) Remove(name string) error {
	if f.FailRemove != nil && f.FailRemove(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: ErrInjected}
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Mkdir(name string, perm fs.FileMode) error {
	if f.FailMkdir != nil && f.FailMkdir(name) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: ErrInjected}
	}
	return f.FS.Mkdir(name, perm)
}

type faultyFile struct {
	types.File
	limit   int
	written int
	corrupt bool
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.corrupt && f.written == 0 && len(p) > 0 {
		q := make([]byte, len(p))
		copy(q, p)
		q[0] ^= 0xff
		p = q
	}
	if f.limit >= 0 && f.written+len(p) > f.limit {
		allowed := f.limit - f.written
		if allowed > 0 {
			n, _ := f.File.Write(p[:allowed])
			f.written += n
		}
		return allowed, ErrInjected
	}
	n, err := f.File.Write(p)
	f.written += n
	return n, err
}
