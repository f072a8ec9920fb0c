// Package menu renders boxed option menus for console display.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/tagline/pkg/errors"
)

// Border selects the box drawing character set.
type Border int

const (
	BorderDefault Border = iota
	BorderClean
	BorderBold
	BorderWiggle
	BorderDouble
)

// ParseBorder maps a border name to its Border value.
func ParseBorder(s string) (Border, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return BorderDefault, nil
	case "clean":
		return BorderClean, nil
	case "bold":
		return BorderBold, nil
	case "wiggle":
		return BorderWiggle, nil
	case "double":
		return BorderDouble, nil
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown border style %q", s)
}

// borderChars holds the pieces of one border style.
type borderChars struct {
	horizontal, vertical                       string
	topLeft, topRight, bottomLeft, bottomRight string
}

var borders = map[Border]borderChars{
	BorderDefault: {"-", "¦", "+", "+", "+", "+"},
	BorderClean:   {"─", "│", "┌", "┐", "└", "┘"},
	BorderBold:    {"━", "┃", "┏", "┓", "┗", "┛"},
	BorderWiggle:  {"~", "~", "~", "~", "~", "~"},
	BorderDouble:  {"═", "║", "╔", "╗", "╚", "╝"},
}

// Menu describes one boxed menu. Use New for sensible defaults.
type Menu struct {
	Title           string
	Options         []string
	Spacing         int
	VerticalSpacing int
	Labeled         bool
	Border          Border
	Align           lipgloss.Position
}

// New returns a menu with the given options and the default presentation:
// two spaces of horizontal padding, one blank line above and below the
// options, and a left-aligned plain border.
func New(options ...string) *Menu {
	return &Menu{
		Title:           " Menu ",
		Options:         options,
		Spacing:         2,
		VerticalSpacing: 1,
		Align:           lipgloss.Left,
	}
}

// Render draws the menu box. At least one option is required.
func (m *Menu) Render() (string, error) {
	if len(m.Options) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "menu needs at least one option")
	}
	if m.Spacing < 0 {
		return "", errors.Newf(errors.ErrInvalidInput, "spacing cannot be negative, got %d", m.Spacing)
	}
	if m.VerticalSpacing < 0 {
		return "", errors.Newf(errors.ErrInvalidInput, "vertical spacing cannot be negative, got %d", m.VerticalSpacing)
	}

	b, ok := borders[m.Border]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown border style %d", m.Border)
	}

	options := m.Options
	if m.Labeled {
		width := len(fmt.Sprint(len(options)))
		options = make([]string, len(m.Options))
		for i, opt := range m.Options {
			options[i] = fmt.Sprintf("%0*d) %s", width, i+1, opt)
		}
	}

	inner := 0
	for _, opt := range options {
		if w := lipgloss.Width(opt); w > inner {
			inner = w
		}
	}

	pad := strings.Repeat(" ", m.Spacing)
	cell := lipgloss.NewStyle().Width(inner).Align(m.Align)

	var out strings.Builder
	out.WriteString(b.topLeft + centerFill(m.Title, inner+2*m.Spacing, b.horizontal) + b.topRight + "\n")

	blank := b.vertical + pad + strings.Repeat(" ", inner) + pad + b.vertical + "\n"
	for i := 0; i < m.VerticalSpacing; i++ {
		out.WriteString(blank)
	}

	for _, opt := range options {
		out.WriteString(b.vertical + pad + cell.Render(opt) + pad + b.vertical + "\n")
	}

	for i := 0; i < m.VerticalSpacing; i++ {
		out.WriteString(blank)
	}

	out.WriteString(b.bottomLeft + strings.Repeat(b.horizontal, inner+2*m.Spacing) + b.bottomRight)
	return out.String(), nil
}

// centerFill centers s in a field of the given width, padding with the
// fill string on both sides. Titles longer than the field are kept whole.
func centerFill(s string, width int, fill string) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, gap-left)
}
