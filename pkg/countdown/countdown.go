// Package countdown renders and runs in-place countdown timers.
package countdown

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/tagline/pkg/errors"
)

// MaxDuration is the longest supported countdown.
const MaxDuration = 24 * time.Hour

// Display selects how the remaining time is written.
type Display int

const (
	// DisplayColons renders "01:30:05".
	DisplayColons Display = iota
	// DisplayWords renders "01 hours 30 minutes 05 seconds".
	DisplayWords
	// DisplayLetters renders "01h 30m 05s".
	DisplayLetters
)

// ParseDisplay maps a display name to its Display value.
func ParseDisplay(name string) (Display, error) {
	switch strings.ToLower(name) {
	case "", "colons", "default":
		return DisplayColons, nil
	case "words":
		return DisplayWords, nil
	case "letters":
		return DisplayLetters, nil
	}
	return DisplayColons, errors.Newf(errors.ErrInvalidInput, "unknown display %q", name)
}

// Config controls formatting of a countdown frame.
type Config struct {
	Display Display
	// Align positions the timer inside Width columns. Ignored when
	// Width is 0.
	Align lipgloss.Position
	Width int
	// Blink alternates a leading arrow between frames.
	Blink bool
}

var separators = map[Display][3]string{
	DisplayColons:  {":", ":", ""},
	DisplayWords:   {" hours ", " minutes ", " seconds "},
	DisplayLetters: {"h ", "m ", "s "},
}

// Format renders one frame for the given remaining time. frame drives
// the blink phase.
func Format(remaining time.Duration, frame int, cfg Config) string {
	total := int(remaining / time.Second)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := total / 60 % 60
	seconds := total % 60

	sep := separators[cfg.Display]
	out := fmt.Sprintf("%02d%s%02d%s%02d%s", hours, sep[0], minutes, sep[1], seconds, sep[2])

	if cfg.Blink {
		if frame%2 == 0 {
			out = "-> " + out
		} else {
			out = "   " + out
		}
	}
	if cfg.Width > 0 {
		out = lipgloss.NewStyle().Width(cfg.Width).Align(cfg.Align).Render(out)
	}
	return out
}

// Run counts down from d to zero, updating an in-place area once per
// second. It returns early when ctx is cancelled.
func Run(ctx context.Context, d time.Duration, cfg Config) error {
	if d < 0 {
		return errors.New(errors.ErrOutOfRange, "countdown time cannot be negative")
	}
	if d > MaxDuration {
		return errors.New(errors.ErrOutOfRange, "maximum countdown time is 24 hours")
	}

	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return errors.Wrap(err, errors.ErrRenderFailed, "failed to start countdown display")
	}
	defer func() { _ = area.Stop() }()

	total := int(d / time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for count := total; ; count-- {
		area.Update(Format(time.Duration(count)*time.Second, count, cfg))
		if count == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
