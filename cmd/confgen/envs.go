package confgen

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/variables"
)

func newEnvsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "envs",
		Short:   MsgEnvsShort,
		Long:    MsgEnvsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			vars, err := variables.Load(s.fs, s.varsPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := vars.Names()
			if len(names) == 0 {
				_, err := fmt.Fprintln(out, MsgNoEnvironments)
				return err
			}
			for _, name := range names {
				m, _ := vars.Get(name)
				keys := MsgNone
				if len(m) > 0 {
					keys = strings.Join(m.Keys(), ", ")
				}
				if _, err := fmt.Fprintf(out, MsgEnvItem, name, keys); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("templates", "t", "", MsgFlagTemplates)
	cmd.Flags().StringP("vars", "f", "", MsgFlagVars)
	return cmd
}
