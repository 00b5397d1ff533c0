// Package relocate moves files into category folders by copying and then
// removing the source. Copy-then-delete works across filesystem boundaries
// where a rename would not; the source is only removed once the copy is
// complete.
package relocate

import (
	"bytes"
	"crypto/sha256"
	stderrors "errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sortdl/pkg/classify"
	"github.com/arthur-debert/sortdl/pkg/destination"
	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/logging"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/rs/zerolog"
)

// Relocator copies a file to a collision-free path in a folder and removes
// the source.
type Relocator struct {
	fs       types.FS
	resolver *destination.Resolver
	verify   bool
	logger   zerolog.Logger
}

// New creates a Relocator. With verify set, the copy is re-read and its
// sha256 compared with the source before the source is removed.
func New(fsys types.FS, resolver *destination.Resolver, verify bool) *Relocator {
	return &Relocator{
		fs:       fsys,
		resolver: resolver,
		verify:   verify,
		logger:   logging.GetLogger("relocate"),
	}
}

// Plan returns where src would be moved inside folder without touching
// the filesystem.
func (r *Relocator) Plan(src, folder string) (string, error) {
	return r.resolver.Resolve(folder, classify.CanonicalName(filepath.Base(src)))
}

// Move copies src into folder under a free name and removes src. The
// destination keeps the stem and lower-cases the extension.
//
// If the copy fails the partial destination is removed and src is left in
// place. If src cannot be removed after a good copy, the copy is kept and
// both paths exist. A destination that appears between resolution and
// copy triggers one fresh resolution.
func (r *Relocator) Move(src, folder string) (string, error) {
	name := classify.CanonicalName(filepath.Base(src))

	dest, err := r.resolver.Resolve(folder, name)
	if err != nil {
		return "", err
	}

	err = r.copyExclusive(src, dest)
	if stderrors.Is(err, fs.ErrExist) {
		r.logger.Warn().
			Str("source", src).
			Str("destination", dest).
			Msg("Destination appeared after resolution, resolving again")

		dest, err = r.resolver.Resolve(folder, name)
		if err != nil {
			return "", err
		}
		err = r.copyExclusive(src, dest)
		if stderrors.Is(err, fs.ErrExist) {
			return "", errors.Wrapf(err, errors.ErrRelocation,
				"destination for %s collided twice", src).
				WithDetail("destination", dest)
		}
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRelocation, "could not copy %s", src).
			WithDetail("destination", dest)
	}

	if err := r.fs.Remove(src); err != nil {
		return dest, errors.Wrapf(err, errors.ErrRelocation,
			"copied %s to %s but could not remove the source", src, dest).
			WithDetail("destination", dest)
	}

	return dest, nil
}

// copyExclusive streams src into a newly created dst. An existing dst is
// reported as fs.ErrExist and left untouched.
func (r *Relocator) copyExclusive(src, dst string) error {
	in, err := r.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := r.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	var reader io.Reader = in
	var srcHasher hash.Hash
	if r.verify {
		srcHasher = sha256.New()
		reader = io.TeeReader(in, srcHasher)
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		_ = out.Close()
		r.discard(dst)
		return err
	}
	if err := out.Close(); err != nil {
		r.discard(dst)
		return err
	}

	if written != info.Size() {
		r.discard(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}

	if r.verify {
		dstSum, err := r.checksum(dst)
		if err != nil {
			r.discard(dst)
			return fmt.Errorf("verify copy: %w", err)
		}
		if !bytes.Equal(srcHasher.Sum(nil), dstSum) {
			r.discard(dst)
			return fmt.Errorf("copy hash mismatch: %s differs from %s", dst, src)
		}
	}

	return nil
}

func (r *Relocator) checksum(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// discard removes a partial copy; failure leaves a stray file but never
// touches the source.
func (r *Relocator) discard(dst string) {
	if err := r.fs.Remove(dst); err != nil {
		r.logger.Warn().Err(err).Str("path", dst).Msg("Could not remove partial copy")
	}
}
