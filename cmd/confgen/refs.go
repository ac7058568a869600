package confgen

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/arthur-debert/confgen/pkg/locator"
)

func newRefsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refs",
		Short:   MsgRefsShort,
		Long:    MsgRefsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			templates, err := locator.Locate(s.fs, s.cfg.Templates.Path, locator.Options{
				VarsFileName: s.cfg.Templates.VarsName,
				Ignore:       s.cfg.Templates.Ignore,
				Exclude:      []string{s.varsPath()},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(templates) == 0 {
				_, err := fmt.Fprintln(out, MsgNoTemplates)
				return err
			}
			for _, tmpl := range templates {
				text, err := s.fs.ReadFile(tmpl.Path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileRead, "reading template %s", tmpl.Path)
				}
				refs := s.engine.References(string(text))
				list := MsgNone
				if len(refs) > 0 {
					list = strings.Join(refs, ", ")
				}
				if _, err := fmt.Fprintf(out, MsgRefsItem, tmpl.Rel, list); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addTemplateFlags(cmd)
	return cmd
}
