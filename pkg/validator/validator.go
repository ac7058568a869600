// Package validator checks that an environment supplies every variable a
// template references before the template is rendered.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/confgen/pkg/engine"
	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/variables"
)

// MissingVariablesError lists what a template needs but the environment
// does not provide
type MissingVariablesError struct {
	Template    string
	Environment string
	Missing     []string
	Provided    []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("not all required variables were provided for template '%s' in environment '%s'\n"+
		"missing variables: [%s]\n"+
		"the variables provided were: [%s]",
		e.Template, e.Environment, strings.Join(e.Missing, ", "), strings.Join(e.Provided, ", "))
}

// Required returns the sorted references of text
func Required(eng engine.Engine, text string) []string {
	required := eng.References(text)
	sort.Strings(required)
	return required
}

// Missing returns required minus provided, in required's order. Both
// slices are expected to hold strings; provided need not be sorted.
func Missing(required, provided []string) []string {
	have := make(map[string]bool, len(provided))
	for _, name := range provided {
		have[name] = true
	}
	var missing []string
	for _, name := range required {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Validate fails when envName is not defined in env, or when the template
// text references variables the environment lacks. It has no side effects.
func Validate(template, text string, eng engine.Engine, env variables.Environment, envName string) error {
	vars, ok := env.Get(envName)
	if !ok {
		return errors.Newf(errors.ErrUnknownEnvironment,
			"environment %q is not defined in the variables (known environments: [%s])",
			envName, strings.Join(env.Names(), ", ")).
			WithDetail("template", template).
			WithDetail("environment", envName).
			WithDetail("known", env.Names())
	}

	required := Required(eng, text)
	provided := vars.Keys()
	missing := Missing(required, provided)
	if len(missing) == 0 {
		return nil
	}

	cause := &MissingVariablesError{
		Template:    template,
		Environment: envName,
		Missing:     missing,
		Provided:    provided,
	}
	return errors.Wrapf(cause, errors.ErrValidation, "template %s is missing variables", template).
		WithDetail("template", template).
		WithDetail("environment", envName).
		WithDetail("missing", missing).
		WithDetail("provided", provided)
}
