// Package table renders fixed-size text grids with aligned cells.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/tagline/pkg/errors"
)

// Table is a fixed rows-by-cols grid. Cells default to empty strings.
type Table struct {
	rows, cols int

	// Align positions text inside each cell.
	Align lipgloss.Position
	// CellWidth is the fixed width of every cell.
	CellWidth int
	// Indexed prepends a column with the zero-based row number.
	Indexed bool
	// IndexHeader labels the index column when headers are set.
	IndexHeader string

	headers []string
	cells   [][]string
}

// New creates an empty table. Both dimensions must be positive.
func New(rows, cols int) (*Table, error) {
	if rows < 1 {
		return nil, errors.New(errors.ErrInvalidInput, "number of rows must be greater than 0")
	}
	if cols < 1 {
		return nil, errors.New(errors.ErrInvalidInput, "number of columns must be greater than 0")
	}

	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return &Table{
		rows:      rows,
		cols:      cols,
		Align:     lipgloss.Left,
		CellWidth: 15,
		cells:     cells,
	}, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// SetHeaders sets the header row. It must have exactly one value per
// column.
func (t *Table) SetHeaders(headers ...string) error {
	if len(headers) != t.cols {
		return errors.Newf(errors.ErrInvalidInput, "headers must have %d values, got %d", t.cols, len(headers))
	}
	t.headers = append([]string(nil), headers...)
	return nil
}

// Set assigns one cell.
func (t *Table) Set(row, col int, value string) error {
	if err := t.check(row, col); err != nil {
		return err
	}
	t.cells[row][col] = value
	return nil
}

// SetRow assigns a whole row at once.
func (t *Table) SetRow(row int, values ...string) error {
	if err := t.check(row, 0); err != nil {
		return err
	}
	if len(values) != t.cols {
		return errors.Newf(errors.ErrInvalidInput, "row must have %d values, got %d", t.cols, len(values))
	}
	copy(t.cells[row], values)
	return nil
}

// Get returns one cell's value.
func (t *Table) Get(row, col int) (string, error) {
	if err := t.check(row, col); err != nil {
		return "", err
	}
	return t.cells[row][col], nil
}

func (t *Table) check(row, col int) error {
	if row < 0 || row >= t.rows {
		return errors.Newf(errors.ErrOutOfRange, "row %d out of range, want 0 to %d", row, t.rows-1)
	}
	if col < 0 || col >= t.cols {
		return errors.Newf(errors.ErrOutOfRange, "column %d out of range, want 0 to %d", col, t.cols-1)
	}
	return nil
}

// String renders the grid, headers first when present.
func (t *Table) String() string {
	cell := lipgloss.NewStyle().Width(t.CellWidth).Align(t.Align)

	var lines []string
	if t.headers != nil {
		var b strings.Builder
		if t.Indexed {
			b.WriteString(cell.Render(t.IndexHeader))
		}
		for _, h := range t.headers {
			b.WriteString(cell.Render(h))
		}
		lines = append(lines, b.String())
	}

	for i, row := range t.cells {
		var b strings.Builder
		if t.Indexed {
			b.WriteString(cell.Render(fmt.Sprint(i)))
		}
		for _, c := range row {
			b.WriteString(cell.Render(c))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}
