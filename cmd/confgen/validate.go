package confgen

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/generator"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate <environment>",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := args[0]

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			vars, err := s.loadVariables(environment, nil)
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
				Printer:      s.printer,
			})
			if err != nil {
				return err
			}

			reports, err := gen.Validate(cmd.Context(), environment)
			for _, r := range reports {
				if perr := s.printer.ValidationLine(r.Template.Rel, r.Missing); perr != nil {
					return perr
				}
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgValidationSummary, len(reports), environment)
			return err
		},
	}

	addTemplateFlags(cmd)
	return cmd
}
