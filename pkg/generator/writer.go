package generator

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/confgen/pkg/errors"
)

const (
	fileMode = 0644
	dirMode  = 0755
)

// joinOutput places a slash separated relative path under root
func joinOutput(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// write stores data at path, overwriting. A missing parent directory is
// created and the write retried once.
func (g *Generator) write(path string, data []byte) error {
	err := g.fs.WriteFile(path, data, fileMode)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path).WithDetail("path", path)
	}

	dir := filepath.Dir(path)
	g.logger.Debug().Str("dir", dir).Msg("Creating output directory")
	if err := g.fs.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating directory %s", dir).WithDetail("path", dir)
	}
	if err := g.fs.WriteFile(path, data, fileMode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path).WithDetail("path", path)
	}
	return nil
}
