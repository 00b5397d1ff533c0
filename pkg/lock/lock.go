// Package lock serializes sweeps so at most one runs per target directory.
package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/logging"
	"github.com/gofrs/flock"
)

// SweepLock is a held lock on one target directory
type SweepLock struct {
	root string
	path string
	lock *flock.Flock
}

// PathFor returns the lock file for root inside locksDir. The file lives
// outside root so a sweep never sees it.
func PathFor(locksDir, root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(locksDir, hex.EncodeToString(sum[:])[:16]+".lock")
}

// Acquire takes the sweep lock for root without blocking. A lock held by
// another sweep fails with ErrSweepLocked.
func Acquire(locksDir, root string) (*SweepLock, error) {
	logger := logging.GetLogger("lock")

	if err := os.MkdirAll(locksDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSetup, "cannot create lock directory %s", locksDir)
	}

	path := PathFor(locksDir, root)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSetup, "acquire lock %s", path)
	}
	if !ok {
		return nil, errors.Newf(errors.ErrSweepLocked, "another sweep of %s is in progress", root).
			WithDetail("lock", path)
	}

	logger.Debug().Str("root", root).Str("lock", path).Msg("Acquired sweep lock")
	return &SweepLock{root: root, path: path, lock: fl}, nil
}

// Path returns the lock file path
func (l *SweepLock) Path() string {
	return l.path
}

// Release unlocks. The lock file is left behind for reuse.
func (l *SweepLock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	logger := logging.GetLogger("lock")
	logger.Debug().Str("root", l.root).Msg("Released sweep lock")
	return nil
}
