package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := guideMarkdown

			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err == nil {
				if rendered, err := renderer.Render(guideMarkdown); err == nil {
					out = rendered
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
