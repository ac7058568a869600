package confgen

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confgen/pkg/config"
	"github.com/arthur-debert/confgen/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := config.ProjectFiles[0]
			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
			if err != nil {
				if os.IsExist(err) {
					return errors.Newf(errors.ErrFileWrite, MsgErrConfigExists, path).WithDetail("path", path)
				}
				return errors.Wrapf(err, errors.ErrFileWrite, "creating %s", path).WithDetail("path", path)
			}
			defer func() { _ = f.Close() }()

			if _, err := f.WriteString(content); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path).WithDetail("path", path)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
