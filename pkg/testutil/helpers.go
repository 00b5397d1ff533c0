package testutil

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/arthur-debert/sortdl/pkg/types"
)

// Checksum returns the hex sha256 of data
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileChecksum returns the hex sha256 of the file at path on fsys
func FileChecksum(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return Checksum(data)
}
