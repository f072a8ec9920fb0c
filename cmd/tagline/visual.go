package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/banner"
	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/menu"
)

func parseAlign(s string) (lipgloss.Position, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return lipgloss.Left, nil
	case "center", "centre":
		return lipgloss.Center, nil
	case "right":
		return lipgloss.Right, nil
	}
	return lipgloss.Left, errors.Newf(errors.ErrInvalidInput, "unknown alignment %q", s)
}

func newBannerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banner <text>",
		Short: MsgBannerShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := banner.Render(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newMenuCmd() *cobra.Command {
	var (
		title   string
		border  string
		align   string
		labeled bool
		spacing int
	)

	cmd := &cobra.Command{
		Use:   "menu <option>...",
		Short: MsgMenuShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := menu.New(args...)
			if cmd.Flags().Changed("title") {
				m.Title = title
			}
			m.Labeled = labeled
			m.Spacing = spacing

			b, err := menu.ParseBorder(border)
			if err != nil {
				return err
			}
			m.Border = b

			pos, err := parseAlign(align)
			if err != nil {
				return err
			}
			m.Align = pos

			out, err := m.Render()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Menu title")
	cmd.Flags().StringVar(&border, "border", "default", "Border style (default, clean, bold, wiggle, double)")
	cmd.Flags().StringVar(&align, "align", "left", "Option alignment (left, center, right)")
	cmd.Flags().BoolVar(&labeled, "labeled", false, "Number each option")
	cmd.Flags().IntVar(&spacing, "spacing", 2, "Horizontal padding inside the border")

	return cmd
}
