// Package locator resolves a template root into the ordered set of template
// files a generation run works through.
package locator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/filesystem"
	"github.com/arthur-debert/confgen/pkg/logging"
)

// DefaultVarsFileName is the reserved variables file name
const DefaultVarsFileName = "vars.yml"

// Template is one located template file
type Template struct {
	// Path is the template's path as found on the filesystem.
	Path string
	// Root is the directory the template set was resolved from.
	Root string
	// Rel is Path relative to Root, slash separated.
	Rel string
}

// TemplateSet is the ordered list of templates for a generator
type TemplateSet []Template

// Paths returns the filesystem paths in order
func (s TemplateSet) Paths() []string {
	paths := make([]string, len(s))
	for i, t := range s {
		paths[i] = t.Path
	}
	return paths
}

// Options tunes directory traversal
type Options struct {
	// VarsFileName is never returned as a template. Defaults to DefaultVarsFileName.
	VarsFileName string
	// Ignore holds filepath.Match patterns tested against base names.
	Ignore []string
	// Exclude lists files never returned as templates, whatever their name.
	// Paths are compared after resolving them to absolute, link-free form.
	Exclude []string
}

// Locate resolves path to a TemplateSet. A directory yields every regular
// file below it, sorted by relative path; a regular file yields itself.
// Symbolic links to files are followed, including a linked root directory;
// links to directories below the root are not descended into.
func Locate(fsys filesystem.FS, path string, opts Options) (TemplateSet, error) {
	logger := logging.GetLogger("locator")

	if opts.VarsFileName == "" {
		opts.VarsFileName = DefaultVarsFileName
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfiguration, "invalid template path %q", path).
			WithDetail("path", path)
	}

	switch {
	case info.IsDir():
		set, err := walk(fsys, path, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("root", path).Int("templates", len(set)).Msg("Located templates in directory")
		return set, nil
	case info.Mode().IsRegular():
		logger.Debug().Str("template", path).Msg("Located single template")
		return TemplateSet{{
			Path: path,
			Root: filepath.Dir(path),
			Rel:  filepath.Base(path),
		}}, nil
	}

	return nil, errors.Newf(errors.ErrConfiguration, "invalid template path %q: neither a file nor a directory", path).
		WithDetail("path", path)
}

// walk lists root's files. Traversal runs over the link-free root; returned
// paths stay under root as given.
func walk(fsys filesystem.FS, root string, opts Options) (TemplateSet, error) {
	logger := logging.GetLogger("locator")

	resolved, err := fsys.EvalSymlinks(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfiguration, "invalid template path %q", root).
			WithDetail("path", root)
	}

	skip := make(map[string]bool, len(opts.Exclude))
	for _, p := range opts.Exclude {
		skip[canonical(fsys, p)] = true
	}

	var set TemplateSet
	err = fsys.Walk(resolved, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				logger.Debug().Str("path", path).Err(err).Msg("Skipping dangling link")
				return nil
			}
			info = target
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if excluded(filepath.Base(path), opts) || skip[canonical(fsys, path)] {
			return nil
		}
		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		set = append(set, Template{
			Path: filepath.Join(root, rel),
			Root: root,
			Rel:  filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfiguration, "failed to read template directory %q", root).
			WithDetail("path", root)
	}

	sort.Slice(set, func(i, j int) bool { return set[i].Rel < set[j].Rel })
	return set, nil
}

// canonical is the absolute, link-free form of p, or the cleaned absolute
// form when links cannot be resolved
func canonical(fsys filesystem.FS, p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := fsys.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return filepath.Clean(p)
}

func excluded(name string, opts Options) bool {
	if name == opts.VarsFileName {
		return true
	}
	for _, pattern := range opts.Ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
