package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	f, err := fsys.Open(testFile)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, testContent, content)

	// Exclusive create must refuse an existing path
	_, err = fsys.OpenFile(testFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	assert.True(t, errors.Is(err, fs.ErrExist))

	subDir := filepath.Join(tmpDir, "images")
	require.NoError(t, fsys.Mkdir(subDir, 0755))
	assert.True(t, errors.Is(fsys.Mkdir(subDir, 0755), fs.ErrExist))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSLstatSeesSymlinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	link := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, os.Symlink(target, link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)
	assert.False(t, info.Mode().IsRegular())
}

func TestAferoFS(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/downloads", 0755))
	require.NoError(t, fsys.WriteFile("/downloads/b.txt", []byte("b"), 0644))
	require.NoError(t, fsys.WriteFile("/downloads/a.txt", []byte("a"), 0644))
	require.NoError(t, fsys.Mkdir("/downloads/images", 0755))

	entries, err := fsys.ReadDir("/downloads")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.True(t, entries[2].IsDir())

	info, err := fsys.Lstat("/downloads/a.txt")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	_, err = fsys.OpenFile("/downloads/a.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	assert.True(t, errors.Is(err, fs.ErrExist))

	_, err = fsys.ReadFile("/downloads/images")
	assert.Error(t, err)
}

func TestAferoReadOnlyRejectsWrites(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/d/a.txt", []byte("a"), 0644))
	fsys := NewAferoFS(afero.NewReadOnlyFs(base))

	_, err := fsys.OpenFile("/d/b.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	assert.Error(t, err)
	assert.Error(t, fsys.Remove("/d/a.txt"))

	data, err := fsys.ReadFile("/d/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)
}
