package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/lorem"
)

func newLoremCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:       "lorem [word|sentence|paragraph|text|list]",
		Short:     MsgLoremShort,
		ValidArgs: []string{"word", "sentence", "paragraph", "text", "list"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := lorem.New()
			if cmd.Flags().Changed("seed") {
				gen = lorem.NewSeeded(seed)
			}

			kind := "sentence"
			if len(args) > 0 {
				kind = args[0]
			}

			var out string
			switch kind {
			case "word":
				out = gen.Word()
			case "sentence":
				out = gen.Sentence(count)
			case "paragraph":
				out = gen.Paragraph()
			case "text":
				out = gen.Text()
			case "list":
				out = strings.Join(gen.List(count), "\n")
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown lorem kind %q", kind)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 0, "Number of words or items (0 = random)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible output")

	return cmd
}
