package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/config"
	"github.com/arthur-debert/tagline/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Genconfig prints the default configuration with every value commented
out, ready to be edited. With -w it is written to the user config path
instead of stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			xdg.Reload()
			path := filepath.Join(xdg.ConfigHome, "tagline", "tagline.toml")
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrWriteFailed, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrWriteFailed, "failed to write config file")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write to the user config path instead of stdout")

	return cmd
}
