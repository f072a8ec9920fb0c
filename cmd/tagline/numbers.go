package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/roman"
	"github.com/arthur-debert/tagline/pkg/words"
)

func newRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roman <value>",
		Short: MsgRomanShort,
		Long: `Roman converts in whichever direction the argument calls for: an
integer becomes a numeral, a numeral becomes an integer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n, err := strconv.Atoi(args[0]); err == nil {
				numeral, err := roman.ToRoman(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), numeral)
				return nil
			}
			n, err := roman.FromRoman(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <number>",
		Short: MsgWordsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), words.AsWord(n))
				return nil
			}
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, "not a number: %q", args[0])
			}
			out, err := words.AsWordFloat(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newPriceCmd() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "price <amount>",
		Short: MsgPriceShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, "not an amount: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), words.AsPrice(amount, currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Currency symbol (default €)")

	return cmd
}
