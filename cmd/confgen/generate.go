package confgen

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/generator"
	"github.com/arthur-debert/confgen/pkg/logging"
)

func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("templates", "t", "", MsgFlagTemplates)
	cmd.Flags().StringP("vars", "f", "", MsgFlagVars)
	cmd.Flags().String("engine", "", MsgFlagEngine)
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		dryRun bool
		sets   []string
	)

	cmd := &cobra.Command{
		Use:     "generate <environment>",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.generate")
			environment := args[0]

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			vars, err := s.loadVariables(environment, sets)
			if err != nil {
				return err
			}

			gen, err := generator.New(generator.Options{
				FS:           s.fs,
				TemplatePath: s.cfg.Templates.Path,
				Vars:         vars,
				VarsFileName: s.cfg.Templates.VarsName,
				Ignore:       s.cfg.Templates.Ignore,
				Exclude:      []string{s.varsPath()},
				Engine:       s.engine,
				FailFast:     s.cfg.Generate.FailFast,
				Parallelism:  s.cfg.Generate.Parallelism,
				Printer:      s.printer,
			})
			if err != nil {
				return err
			}

			outputRoot := s.cfg.OutputDir(environment)
			results, err := gen.Generate(cmd.Context(), environment, outputRoot, dryRun)
			var printErr error
			for _, r := range results {
				if r.OutputPath == "" || printErr != nil {
					continue
				}
				printErr = s.printer.Written(r.Template.Rel, r.OutputPath)
			}
			if err != nil {
				return err
			}
			if printErr != nil {
				logger.Error().Err(printErr).Msg("Failed to report written files")
				return printErr
			}

			logger.Info().Int("templates", len(results)).Str("output", outputRoot).Msg("Generate command finished")
			return s.printer.Summary(environment, len(results), dryRun)
		},
	}

	addTemplateFlags(cmd)
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().StringArrayVar(&sets, "set", nil, MsgFlagSet)
	cmd.Flags().Bool("fail-fast", false, MsgFlagFailFast)

	return cmd
}
