package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/sortdl/pkg/filesystem"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles creates each relative path under root with the given content.
// A trailing slash creates a directory instead.
func WriteFiles(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("create root %s: %v", root, err)
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if rel[len(rel)-1] == '/' {
			if err := fsys.MkdirAll(path, 0755); err != nil {
				t.Fatalf("create dir %s: %v", path, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("create parent of %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ReadTree returns every regular file below root as relative path -> content.
// Directories are listed with a trailing slash and empty content.
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir %s: %v", dir, err)
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			rel, _ := filepath.Rel(root, path)
			if e.IsDir() {
				out[filepath.ToSlash(rel)+"/"] = ""
				walk(path)
				continue
			}
			data, err := fsys.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			out[filepath.ToSlash(rel)] = string(data)
		}
	}
	walk(root)
	return out
}

// Names returns the sorted entry names of dir
func Names(t *testing.T, fsys types.FS, dir string) []string {
	t.Helper()

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Exists reports whether path can be stat'ed
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}
