package table_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/table"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"valid", 2, 3, false},
		{"single cell", 1, 1, false},
		{"zero rows", 0, 3, true},
		{"zero cols", 2, 0, true},
		{"negative rows", -1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := table.New(tt.rows, tt.cols)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, tbl.Rows())
			assert.Equal(t, tt.cols, tbl.Cols())
		})
	}
}

func TestSetGet(t *testing.T) {
	tbl, err := table.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, tbl.Set(0, 0, "a"))
	require.NoError(t, tbl.Set(1, 1, "b"))

	got, err := tbl.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = tbl.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "", got, "unset cells default to empty")

	got, err = tbl.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestBoundsChecks(t *testing.T) {
	tbl, err := table.New(2, 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row, col int
	}{
		{"row too high", 2, 0},
		{"row negative", -1, 0},
		{"col too high", 0, 3},
		{"col negative", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.Set(tt.row, tt.col, "x")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrOutOfRange))

			_, err = tbl.Get(tt.row, tt.col)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrOutOfRange))
		})
	}
}

func TestSetRow(t *testing.T) {
	tbl, err := table.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, tbl.SetRow(0, "a", "b", "c"))
	got, err := tbl.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	assert.Error(t, tbl.SetRow(0, "too", "few"))
	assert.Error(t, tbl.SetRow(5, "a", "b", "c"))
}

func TestSetHeaders(t *testing.T) {
	tbl, err := table.New(1, 2)
	require.NoError(t, err)

	assert.Error(t, tbl.SetHeaders("only one"))
	require.NoError(t, tbl.SetHeaders("name", "value"))

	out := tbl.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "value")
}

func TestStringWidths(t *testing.T) {
	tbl, err := table.New(2, 2)
	require.NoError(t, err)
	tbl.CellWidth = 8

	require.NoError(t, tbl.SetRow(0, "a", "bb"))
	require.NoError(t, tbl.SetRow(1, "ccc", "d"))

	lines := strings.Split(tbl.String(), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 16, lipgloss.Width(line))
	}
	assert.Equal(t, "a       bb      ", lines[0])
}

func TestAlignment(t *testing.T) {
	tbl, err := table.New(1, 1)
	require.NoError(t, err)
	tbl.CellWidth = 6
	tbl.Align = lipgloss.Right
	require.NoError(t, tbl.Set(0, 0, "x"))

	assert.Equal(t, "     x", tbl.String())
}

func TestIndexedColumn(t *testing.T) {
	tbl, err := table.New(2, 1)
	require.NoError(t, err)
	tbl.CellWidth = 4
	tbl.Indexed = true
	tbl.IndexHeader = "#"
	require.NoError(t, tbl.SetHeaders("name"))
	require.NoError(t, tbl.Set(0, 0, "a"))
	require.NoError(t, tbl.Set(1, 0, "b"))

	lines := strings.Split(tbl.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#   name", lines[0])
	assert.Equal(t, "0   a   ", lines[1])
	assert.Equal(t, "1   b   ", lines[2])
}
