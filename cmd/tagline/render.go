package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/config"
	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/markup"
	"github.com/arthur-debert/tagline/pkg/printer"
)

func parseColorMode(s string) (printer.ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return printer.ColorAuto, nil
	case "always":
		return printer.ColorAlways, nil
	case "never":
		return printer.ColorNever, nil
	}
	return printer.ColorAuto, errors.Newf(errors.ErrInvalidInput, "unknown color mode %q", s)
}

// newPrinter builds a printer from the merged config, with any flags the
// user set on cmd taking precedence.
func newPrinter(cmd *cobra.Command, cfg *config.Config) (*printer.Printer, error) {
	p := printer.New(cmd.OutOrStdout())
	p.Err = cmd.ErrOrStderr()
	p.Separator = cfg.Output.Separator
	p.Terminator = cfg.Output.Terminator
	p.Strict = cfg.Markup.Strict
	p.Registry = cfg.Registry()

	color := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		color, _ = cmd.Flags().GetString("color")
	}
	mode, err := parseColorMode(color)
	if err != nil {
		return nil, err
	}
	p.Color = mode
	if f := cmd.Flags().Lookup("no-color"); f != nil && f.Changed {
		p.Color = printer.ColorNever
	}

	if cmd.Flags().Changed("strict") {
		p.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("sep") {
		p.Separator, _ = cmd.Flags().GetString("sep")
	}
	if cmd.Flags().Changed("end") {
		p.Terminator, _ = cmd.Flags().GetString("end")
	}
	if noNewline, _ := cmd.Flags().GetBool("no-newline"); noNewline {
		p.Terminator = ""
	}
	return p, nil
}

// inputArgs returns args, or the whole of stdin split into one argument
// when none were given.
func inputArgs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read standard input")
	}
	return []string{strings.TrimRight(string(data), "\n")}, nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd, cfg)
			if err != nil {
				return err
			}
			args, err = inputArgs(cmd, args)
			if err != nil {
				return err
			}
			return p.Print(args...)
		},
	}

	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	cmd.Flags().String("color", "", MsgFlagColor)
	cmd.Flags().Bool("no-color", false, "Shorthand for --color=never")
	cmd.Flags().String("sep", " ", MsgFlagSep)
	cmd.Flags().String("end", "\n", MsgFlagEnd)
	cmd.Flags().BoolP("no-newline", "n", false, MsgFlagNoNL)

	return cmd
}

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: MsgStripShort,
		Long: `Strip removes style tags from its arguments and prints the plain text.
Escapes are resolved and unknown tags are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, err := inputArgs(cmd, args)
			if err != nil {
				return err
			}
			for i, arg := range args {
				args[i] = markup.Strip(arg)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), strings.Join(args, " ")+"\n")
			return err
		},
	}
}
