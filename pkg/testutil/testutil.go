package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/confgen/pkg/filesystem"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// WriteTree writes files, keyed by slash separated paths relative to root,
// into fsys.
func WriteTree(t *testing.T, fsys filesystem.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// ListFiles returns every regular file under root, relative and slash
// separated. A missing root yields nothing.
func ListFiles(t *testing.T, fsys filesystem.FS, root string) []string {
	t.Helper()

	if !filesystem.IsDir(fsys, root) {
		return nil
	}

	var files []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to list %s: %v", root, err)
	}
	return files
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, fsys filesystem.FS, path, expected string) {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("File %s does not exist or is unreadable: %v", path, err)
	}
	if string(content) != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, string(content))
	}
}

// AssertNoFile checks that a file does not exist.
func AssertNoFile(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()

	if _, err := fsys.Stat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}
