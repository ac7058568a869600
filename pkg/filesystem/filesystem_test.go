package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(subDir, "nested.txt"), []byte("n"), 0644))

	assert.True(t, IsDir(fsys, subDir))
	assert.False(t, IsDir(fsys, testFile))
	assert.True(t, IsRegularFile(fsys, testFile))
	assert.False(t, IsRegularFile(fsys, subDir))
	assert.False(t, IsRegularFile(fsys, filepath.Join(root, "missing")))

	var files []string
	err = fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	assert.Equal(t, []string{"sub/dir/nested.txt", "test.txt"}, files)

	_, err = fsys.ReadFile(subDir)
	assert.Error(t, err)

	_, err = fsys.EvalSymlinks(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestEvalSymlinks(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(target, 0755))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	for name, fsys := range map[string]FS{
		"os":       NewOS(),
		"afero os": NewAferoFS(afero.NewOsFs()),
	} {
		t.Run(name, func(t *testing.T) {
			resolved, err := fsys.EvalSymlinks(link)
			require.NoError(t, err)
			assert.Equal(t, target, resolved)
		})
	}

	mem := NewMemory()
	require.NoError(t, mem.MkdirAll("/work/a", 0755))
	resolved, err := mem.EvalSymlinks("/work/./a/")
	require.NoError(t, err)
	assert.Equal(t, "/work/a", resolved)
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, NewMemory(), "/work")
}
