package generator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/confgen/pkg/config"
	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/locator"
	"github.com/arthur-debert/confgen/pkg/logging"
)

// rendered is a template whose text is ready to be written
type rendered struct {
	tmpl locator.Template
	text string
}

// Generate renders every template for environment. With dryRun the output
// goes to the Printer and nothing is written; otherwise each template is
// written under outputRoot, which defaults to deployment/<environment>.
func (g *Generator) Generate(ctx context.Context, environment, outputRoot string, dryRun bool) ([]Result, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	if outputRoot == "" {
		outputRoot = config.ExpandOutputDir("", environment)
	}

	g.logger.Info().
		Str("environment", environment).
		Str("outputRoot", outputRoot).
		Bool("dryRun", dryRun).
		Bool("failFast", g.failFast).
		Int("templates", len(g.templates)).
		Msg("Starting generation")

	if err := g.requireEnvironment(environment); err != nil {
		return nil, err
	}

	if dryRun {
		if err := g.printer.DryRunBanner(environment); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileWrite, "writing dry-run output")
		}
	}

	if g.failFast {
		return g.generateFailFast(ctx, environment, outputRoot, dryRun)
	}

	if err := g.validateAll(ctx, environment); err != nil {
		return nil, err
	}

	pending := make([]rendered, 0, len(g.templates))
	for _, tmpl := range g.templates {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		text, err := g.Render(tmpl, environment)
		if err != nil {
			return nil, err
		}
		pending = append(pending, rendered{tmpl: tmpl, text: text})
	}

	results := make([]Result, 0, len(pending))
	for _, r := range pending {
		if err := checkContext(ctx); err != nil {
			return results, err
		}
		result, err := g.emit(r, outputRoot, dryRun)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	g.logger.Info().Int("templates", len(results)).Msg("Generation completed")
	return results, nil
}

// generateFailFast validates, renders and emits one template at a time.
// Earlier outputs are kept when a later template fails.
func (g *Generator) generateFailFast(ctx context.Context, environment, outputRoot string, dryRun bool) ([]Result, error) {
	results := make([]Result, 0, len(g.templates))
	for _, tmpl := range g.templates {
		if err := checkContext(ctx); err != nil {
			return results, err
		}
		if err := g.ValidateTemplate(tmpl, environment); err != nil {
			g.logger.Warn().Err(err).Str("template", tmpl.Path).Int("written", len(results)).
				Msg("Validation failed, stopping run")
			return results, err
		}
		text, err := g.Render(tmpl, environment)
		if err != nil {
			return results, err
		}
		result, err := g.emit(rendered{tmpl: tmpl, text: text}, outputRoot, dryRun)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// validateAll checks every template concurrently and reports the first
// failure in template order
func (g *Generator) validateAll(ctx context.Context, environment string) error {
	failures := make([]error, len(g.templates))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelism)

	for i, tmpl := range g.templates {
		i, tmpl := i, tmpl
		eg.Go(func() error {
			if err := checkContext(ctx); err != nil {
				return err
			}
			failures[i] = g.ValidateTemplate(tmpl, environment)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, err := range failures {
		if err != nil {
			g.logger.Warn().Err(err).Msg("Validation failed, nothing written")
			return err
		}
	}
	return nil
}

func (g *Generator) emit(r rendered, outputRoot string, dryRun bool) (Result, error) {
	if dryRun {
		if err := g.printer.Template(r.tmpl.Path, r.text); err != nil {
			return Result{}, errors.Wrap(err, errors.ErrFileWrite, "writing dry-run output")
		}
		return Result{Template: r.tmpl, Bytes: len(r.text)}, nil
	}

	path := g.OutputPath(r.tmpl, outputRoot)
	if err := g.write(path, []byte(r.text)); err != nil {
		return Result{}, err
	}
	g.logger.Debug().Str("template", r.tmpl.Path).Str("output", path).Int("bytes", len(r.text)).
		Msg("Wrote rendered template")
	return Result{Template: r.tmpl, OutputPath: path, Bytes: len(r.text)}, nil
}
