package generator

import (
	"context"
	stderrors "errors"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/locator"
	"github.com/arthur-debert/confgen/pkg/validator"
)

// Report is the validation outcome of one template
type Report struct {
	Template   locator.Template
	References []string
	Missing    []string
	Provided   []string
}

// OK reports whether nothing is missing
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Validate checks every template against environment and reports each of
// them, in template order. The returned error is a validation error when any
// template misses variables, or the first non-validation failure.
func (g *Generator) Validate(ctx context.Context, environment string) ([]Report, error) {
	if err := g.requireEnvironment(environment); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(g.templates))
	failed := 0
	for _, tmpl := range g.templates {
		if err := checkContext(ctx); err != nil {
			return reports, err
		}

		refs, err := g.References(tmpl)
		if err != nil {
			return reports, err
		}
		report := Report{Template: tmpl, References: refs}

		err = g.ValidateTemplate(tmpl, environment)
		var missing *validator.MissingVariablesError
		switch {
		case err == nil:
			vars, _ := g.vars.Get(environment)
			report.Provided = vars.Keys()
		case stderrors.As(err, &missing):
			report.Missing = missing.Missing
			report.Provided = missing.Provided
			failed++
		default:
			return reports, err
		}
		reports = append(reports, report)
	}

	if failed > 0 {
		return reports, errors.Newf(errors.ErrValidation, "%d of %d template(s) reference variables missing from %s",
			failed, len(reports), environment).
			WithDetail("environment", environment).
			WithDetail("failed", failed)
	}
	return reports, nil
}
