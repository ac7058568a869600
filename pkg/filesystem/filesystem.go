package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FS is the set of filesystem primitives confgen relies on
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Walk(root string, fn filepath.WalkFunc) error
	// EvalSymlinks returns path with symbolic links resolved
	EvalSymlinks(path string) (string, error)
}

// IsDir reports whether path exists and is a directory
func IsDir(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path exists and is a regular file
func IsRegularFile(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
