package confgen

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/config"
	"github.com/arthur-debert/confgen/pkg/engine"
	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/filesystem"
	"github.com/arthur-debert/confgen/pkg/output"
	"github.com/arthur-debert/confgen/pkg/variables"
)

// flagKeys maps command flags onto configuration keys
var flagKeys = map[string]string{
	"templates": "templates.path",
	"vars":      "templates.vars_file",
	"output":    "generate.output_dir",
	"fail-fast": "generate.fail_fast",
	"engine":    "engine.name",
}

// session is the resolved state one command runs with
type session struct {
	cfg     *config.Config
	fs      filesystem.FS
	engine  engine.Engine
	printer *output.Printer
}

// newSession loads configuration with the changed flags of cmd applied last
func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	overrides := map[string]interface{}{}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	if opts.noColor {
		overrides["output.color"] = false
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(cfg.Engine.Name, cfg.Engine.Suffix)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		fs:      filesystem.NewOS(),
		engine:  eng,
		printer: output.NewPrinter(cmd.OutOrStdout(), cfg.Output.Color),
	}, nil
}

// varsPath resolves the variables file for the configured template root
func (s *session) varsPath() string {
	return s.cfg.VarsPath(filesystem.IsDir(s.fs, s.cfg.Templates.Path))
}

// loadVariables reads the variables file and applies --set pairs to the
// named environment when it exists
func (s *session) loadVariables(environment string, pairs []string) (variables.Environment, error) {
	vars, err := variables.Load(s.fs, s.varsPath())
	if err != nil {
		return nil, err
	}
	if _, ok := vars.Get(environment); !ok || len(pairs) == 0 {
		return vars, nil
	}
	vars, err = vars.WithOverrides(environment, pairs)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --set value")
	}
	return vars, nil
}
