// Package printer is the text sink for rendered markup. It owns the
// pass-through presentation options (target stream, separator, trailing
// terminator) and the color on/off policy; the actual tag rewriting lives
// in pkg/markup.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/tagline/pkg/ansi"
	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/logging"
	"github.com/arthur-debert/tagline/pkg/markup"
)

// ColorMode selects whether control codes are emitted.
type ColorMode int

const (
	// ColorAuto emits codes only when the output is a terminal and
	// NO_COLOR is not set.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Printer renders markup strings and writes them to an output stream.
// The zero value is not usable; use New.
type Printer struct {
	Out        io.Writer
	Err        io.Writer
	Separator  string
	Terminator string
	Color      ColorMode
	Strict     bool
	Registry   *ansi.Registry
}

// New returns a printer writing to out with the default presentation:
// arguments joined by a single space, a trailing newline, automatic color
// detection, and lenient tag handling.
func New(out io.Writer) *Printer {
	return &Printer{
		Out:        out,
		Err:        os.Stderr,
		Separator:  " ",
		Terminator: "\n",
	}
}

// Print renders each argument and writes them joined by the separator,
// followed by the terminator. Rendering is atomic: if any argument fails
// to render, nothing is written.
func (p *Printer) Print(args ...string) error {
	return p.print(p.Out, args)
}

// Printf formats according to the usual fmt verbs and then renders the
// result as markup.
func (p *Printer) Printf(format string, a ...interface{}) error {
	return p.print(p.Out, []string{fmt.Sprintf(format, a...)})
}

// Errmsg prints a red error message to the error stream.
func (p *Printer) Errmsg(args ...string) error {
	wrapped := make([]string, len(args))
	for i, arg := range args {
		wrapped[i] = "<red>" + arg + "</red>"
	}
	return p.print(p.Err, wrapped)
}

// Successmsg prints a green success message.
func (p *Printer) Successmsg(args ...string) error {
	wrapped := make([]string, len(args))
	for i, arg := range args {
		wrapped[i] = "<green>" + arg + "</green>"
	}
	return p.print(p.Out, wrapped)
}

func (p *Printer) print(w io.Writer, args []string) error {
	logger := logging.GetLogger("printer")

	color := p.colorEnabled(w)
	rendered := make([]string, len(args))
	for i, arg := range args {
		// Rendering validates even when the codes are then discarded, so
		// malformed input fails the same way on and off a terminal.
		out, err := markup.Render(arg, markup.Options{Strict: p.Strict, Registry: p.Registry})
		if err != nil {
			logger.Debug().Err(err).Str("arg", arg).Msg("markup rendering failed")
			return err
		}
		if color {
			rendered[i] = out
		} else {
			rendered[i] = markup.StripWith(arg, p.Registry)
		}
	}

	line := strings.Join(rendered, p.Separator) + p.Terminator
	if _, err := io.WriteString(w, line); err != nil {
		return errors.Wrap(err, errors.ErrWriteFailed, "failed to write output")
	}
	return nil
}

// colorEnabled decides whether to emit control codes for the given stream.
func (p *Printer) colorEnabled(w io.Writer) bool {
	switch p.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Default is the process-wide printer writing to stdout.
var Default = New(os.Stdout)

// Print renders and prints using the default printer.
func Print(args ...string) error {
	return Default.Print(args...)
}

// Errmsg prints a red error message to stderr using the default printer.
func Errmsg(args ...string) error {
	return Default.Errmsg(args...)
}

// Successmsg prints a green success message using the default printer.
func Successmsg(args ...string) error {
	return Default.Successmsg(args...)
}
