package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagline/pkg/countdown"
	"github.com/arthur-debert/tagline/pkg/errors"
)

// parseCountdownArgs follows positional convention: one value is seconds,
// two are minutes and seconds, three are hours, minutes and seconds.
func parseCountdownArgs(args []string) (time.Duration, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, errors.Newf(errors.ErrInvalidInput, "not a number: %q", arg)
		}
		values[i] = n
	}

	var hours, minutes, seconds int
	switch len(values) {
	case 1:
		seconds = values[0]
	case 2:
		minutes, seconds = values[0], values[1]
	case 3:
		hours, minutes, seconds = values[0], values[1], values[2]
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

func newCountdownCmd() *cobra.Command {
	var (
		display string
		align   string
		width   int
		blink   bool
	)

	cmd := &cobra.Command{
		Use:   "countdown [hours] [minutes] <seconds>",
		Short: MsgCountdownShort,
		Long: `Countdown counts down to zero, redrawing the timer in place once per
second. With one argument it counts seconds, with two minutes and
seconds, with three hours, minutes and seconds.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseCountdownArgs(args)
			if err != nil {
				return err
			}

			disp, err := countdown.ParseDisplay(display)
			if err != nil {
				return err
			}
			pos, err := parseAlign(align)
			if err != nil {
				return err
			}

			cfg := countdown.Config{
				Display: disp,
				Align:   pos,
				Width:   width,
				Blink:   blink,
			}
			return countdown.Run(cmd.Context(), d, cfg)
		},
	}

	cmd.Flags().StringVar(&display, "display", "colons", "Timer format (colons, words, letters)")
	cmd.Flags().StringVar(&align, "align", "left", "Timer alignment (left, center, right)")
	cmd.Flags().IntVar(&width, "width", 0, "Field width for alignment (0 = none)")
	cmd.Flags().BoolVar(&blink, "blink", false, "Show a blinking arrow next to the timer")

	return cmd
}
