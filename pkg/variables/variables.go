// Package variables loads the per-environment variable maps templates are
// rendered against.
//
// A variables source is either a structured data file or an in-memory
// mapping, both shaped as
//
//	staging:
//	  host: staging.example.com
//	  port: 8080
//	production:
//	  host: example.com
//	  port: 443
//
// Top level keys name environments; each environment maps variable names to
// values. Values are passed through to the template engine untouched.
package variables

import (
	"fmt"
	"sort"
	"strings"
)

// Map holds the variables of one environment
type Map map[string]any

// Keys returns the variable names, sorted
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of m
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Environment maps environment names to their variables
type Environment map[string]Map

// Names returns the environment names, sorted
func (e Environment) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the variables of one environment
func (e Environment) Get(name string) (Map, bool) {
	m, ok := e[name]
	return m, ok
}

// WithOverrides returns a copy of e where environment name has the given
// KEY=VALUE pairs applied. e itself is left untouched.
func (e Environment) WithOverrides(name string, pairs []string) (Environment, error) {
	if len(pairs) == 0 {
		return e, nil
	}

	out := make(Environment, len(e))
	for k, v := range e {
		out[k] = v
	}

	vars := Map{}
	if existing, ok := e[name]; ok {
		vars = existing.Clone()
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not KEY=VALUE", pair)
		}
		vars[key] = value
	}
	out[name] = vars
	return out, nil
}
