package printer_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red   = "\033[91m"
	green = "\033[92m"
	blue  = "\033[94m"
	reset = "\033[0;0m"
)

func newTestPrinter(color printer.ColorMode) (*printer.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := printer.New(&out)
	p.Err = &errOut
	p.Color = color
	return p, &out, &errOut
}

func TestPrintWithColor(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorAlways)

	require.NoError(t, p.Print("<blue>sky</blue>"))
	assert.Equal(t, blue+"sky"+reset+reset+"\n", out.String())
}

func TestPrintWithoutColor(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorNever)

	require.NoError(t, p.Print("<blue>sky</blue>"))
	assert.Equal(t, "sky\n", out.String())
}

func TestPrintJoinsWithSeparator(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorNever)
	p.Separator = " | "
	p.Terminator = ""

	require.NoError(t, p.Print("a", "b", "c"))
	assert.Equal(t, "a | b | c", out.String())
}

func TestPrintAtomicOnError(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorAlways)
	p.Strict = true

	err := p.Print("fine", "<bogus>bad</bogus>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedTag))
	assert.Empty(t, out.String(), "nothing should be written when rendering fails")
}

func TestMalformedInputFailsOffTerminal(t *testing.T) {
	// Validation runs even when codes are discarded, so exit behavior
	// does not depend on where output goes.
	p, out, _ := newTestPrinter(printer.ColorNever)
	p.Strict = true

	err := p.Print("<bogus>bad</bogus>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedTag))
	assert.Empty(t, out.String())

	p.Strict = false
	err = p.Print("stray </blue>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedClosingTag))
	assert.Empty(t, out.String())
}

func TestPrintf(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorNever)

	require.NoError(t, p.Printf("<bold>%d</bold> items", 3))
	assert.Equal(t, "3 items\n", out.String())
}

func TestErrmsg(t *testing.T) {
	p, out, errOut := newTestPrinter(printer.ColorAlways)

	require.NoError(t, p.Errmsg("bad input"))
	assert.Empty(t, out.String(), "error messages go to the error stream")
	assert.Equal(t, red+"bad input"+reset+reset+"\n", errOut.String())
}

func TestSuccessmsg(t *testing.T) {
	p, out, _ := newTestPrinter(printer.ColorAlways)

	require.NoError(t, p.Successmsg("all good"))
	assert.Equal(t, green+"all good"+reset+reset+"\n", out.String())
}

func TestAutoColorDisabledForBuffers(t *testing.T) {
	// A bytes.Buffer is not a terminal, so auto mode strips tags.
	p, out, _ := newTestPrinter(printer.ColorAuto)

	require.NoError(t, p.Print("<blue>sky</blue>"))
	assert.Equal(t, "sky\n", out.String())
}

func TestNoColorEnvRespected(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	p, out, _ := newTestPrinter(printer.ColorAuto)
	require.NoError(t, p.Print("<blue>sky</blue>"))
	assert.Equal(t, "sky\n", out.String())
}
