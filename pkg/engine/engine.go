package engine

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/variables"
)

// DefaultEngine is used when no engine is configured
const DefaultEngine = "hcl"

// Engine expands templates of one syntax
type Engine interface {
	// Name is the registry name of the engine
	Name() string
	// Suffix is the template file suffix stripped from output names
	Suffix() string
	// References returns the distinct variable names referenced by text, in
	// order of first appearance
	References(text string) []string
	// Render expands text against vars; name identifies the template in errors
	Render(name, text string, vars variables.Map) (string, error)
}

// Factory builds an engine; suffix overrides the engine default when set
type Factory func(suffix string) Engine

var factories = map[string]Factory{
	"hcl": func(suffix string) Engine { return NewHCL(suffix) },
	"go":  func(suffix string) Engine { return NewGoTemplate(suffix) },
}

// New returns the named engine
func New(name, suffix string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	factory, ok := factories[name]
	if !ok {
		return nil, errors.Newf(errors.ErrConfiguration, "unknown template engine %q (available: %s)",
			name, strings.Join(Names(), ", ")).
			WithDetail("engine", name)
	}
	return factory(suffix), nil
}

// Names lists the registered engines, sorted
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutputName strips the engine suffix from the last element of a slash
// separated relative template path. Names without the suffix are kept.
func OutputName(e Engine, rel string) string {
	dir, file := path.Split(rel)
	if suffix := e.Suffix(); suffix != "" && file != suffix && strings.HasSuffix(file, suffix) {
		file = strings.TrimSuffix(file, suffix)
	}
	return dir + file
}

// scanReferences collects capture group 1 of every match, deduplicated
func scanReferences(re *regexp.Regexp, text string) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		refs = append(refs, name)
	}
	return refs
}

func renderError(err error, name string) error {
	return errors.Wrapf(err, errors.ErrRender, "failed to render template %s", name).
		WithDetail("template", name)
}

func renderErrorf(name, format string, args ...interface{}) error {
	return renderError(fmt.Errorf(format, args...), name)
}
