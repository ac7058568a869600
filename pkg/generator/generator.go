package generator

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/confgen/pkg/engine"
	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/filesystem"
	"github.com/arthur-debert/confgen/pkg/locator"
	"github.com/arthur-debert/confgen/pkg/logging"
	"github.com/arthur-debert/confgen/pkg/output"
	"github.com/arthur-debert/confgen/pkg/validator"
	"github.com/arthur-debert/confgen/pkg/variables"
)

// DefaultParallelism bounds the up-front validation pass
const DefaultParallelism = 4

// Printer receives dry-run output
type Printer interface {
	DryRunBanner(environment string) error
	Template(name, rendered string) error
}

// Options configures a Generator
type Options struct {
	// FS defaults to the OS filesystem.
	FS filesystem.FS
	// TemplatePath is a template file or a directory of templates.
	TemplatePath string
	// Vars is a variables file path or a mapping (see variables.Load).
	Vars any
	// VarsFileName is excluded from the template set. Defaults to vars.yml.
	VarsFileName string
	// Ignore holds base-name globs excluded from the template set.
	Ignore []string
	// Exclude lists files never treated as templates. A Vars path is
	// always excluded.
	Exclude []string
	// Engine defaults to the hcl engine.
	Engine engine.Engine
	// FailFast switches to per-template validate, render, write.
	FailFast bool
	// Parallelism bounds concurrent validation. Defaults to DefaultParallelism.
	Parallelism int
	// Printer receives dry-run output. Defaults to plain stdout.
	Printer Printer
}

// Generator renders one template set against one variables environment.
// Its templates and variables are fixed at construction.
type Generator struct {
	fs          filesystem.FS
	templates   locator.TemplateSet
	vars        variables.Environment
	engine      engine.Engine
	failFast    bool
	parallelism int
	printer     Printer
	logger      zerolog.Logger
}

// Result describes one processed template
type Result struct {
	Template locator.Template
	// OutputPath is empty on dry runs.
	OutputPath string
	Bytes      int
}

// New loads variables and locates templates
func New(opts Options) (*Generator, error) {
	logger := logging.GetLogger("generator")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	eng := opts.Engine
	if eng == nil {
		eng = engine.NewHCL("")
	}

	vars, err := variables.Load(fsys, opts.Vars)
	if err != nil {
		return nil, err
	}

	exclude := opts.Exclude
	if path, ok := opts.Vars.(string); ok && path != "" {
		exclude = append(append([]string(nil), exclude...), path)
	}

	templates, err := locator.Locate(fsys, opts.TemplatePath, locator.Options{
		VarsFileName: opts.VarsFileName,
		Ignore:       opts.Ignore,
		Exclude:      exclude,
	})
	if err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}

	printer := opts.Printer
	if printer == nil {
		printer = output.NewPrinter(os.Stdout, false)
	}

	logger.Debug().
		Str("templatePath", opts.TemplatePath).
		Int("templates", len(templates)).
		Strs("environments", vars.Names()).
		Str("engine", eng.Name()).
		Bool("failFast", opts.FailFast).
		Msg("Generator created")

	return &Generator{
		fs:          fsys,
		templates:   templates,
		vars:        vars,
		engine:      eng,
		failFast:    opts.FailFast,
		parallelism: parallelism,
		printer:     printer,
		logger:      logger,
	}, nil
}

// Templates returns the located template set
func (g *Generator) Templates() locator.TemplateSet {
	return g.templates
}

// Environments returns the defined environment names, sorted
func (g *Generator) Environments() []string {
	return g.vars.Names()
}

// Variables returns the variables of one environment
func (g *Generator) Variables(environment string) (variables.Map, bool) {
	return g.vars.Get(environment)
}

// Engine returns the template engine in use
func (g *Generator) Engine() engine.Engine {
	return g.engine
}

// read loads a template's text; references are recomputed from it on
// every call
func (g *Generator) read(tmpl locator.Template) (string, error) {
	data, err := g.fs.ReadFile(tmpl.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "reading template %s", tmpl.Path).
			WithDetail("template", tmpl.Path)
	}
	return string(data), nil
}

// References returns the variables referenced by tmpl
func (g *Generator) References(tmpl locator.Template) ([]string, error) {
	text, err := g.read(tmpl)
	if err != nil {
		return nil, err
	}
	return g.engine.References(text), nil
}

// ValidateTemplate checks tmpl against one environment
func (g *Generator) ValidateTemplate(tmpl locator.Template, environment string) error {
	text, err := g.read(tmpl)
	if err != nil {
		return err
	}
	return validator.Validate(tmpl.Path, text, g.engine, g.vars, environment)
}

// Render expands tmpl with one environment's variables. It does not
// validate; callers validate first so missing variables are reported as
// validation errors, not render errors.
func (g *Generator) Render(tmpl locator.Template, environment string) (string, error) {
	if err := g.requireEnvironment(environment); err != nil {
		return "", err
	}
	vars, _ := g.vars.Get(environment)
	text, err := g.read(tmpl)
	if err != nil {
		return "", err
	}
	return g.engine.Render(tmpl.Path, text, vars)
}

// OutputPath maps tmpl to its destination under outputRoot
func (g *Generator) OutputPath(tmpl locator.Template, outputRoot string) string {
	return joinOutput(outputRoot, engine.OutputName(g.engine, tmpl.Rel))
}

// requireEnvironment fails for environments the variables do not define
func (g *Generator) requireEnvironment(environment string) error {
	if _, ok := g.vars.Get(environment); ok {
		return nil
	}
	return errors.Newf(errors.ErrUnknownEnvironment, "environment %q is not defined in the variables (known environments: %v)",
		environment, g.vars.Names()).
		WithDetail("environment", environment).
		WithDetail("known", g.vars.Names())
}

// checkContext stops a run between templates once ctx is done
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "generation cancelled")
	}
	return nil
}
