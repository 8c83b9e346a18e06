// Package render turns a frame plus per-cell style declarations into a laid
// out, styled table description. Drawing the description is left to the
// terminal package.
package render

import (
	"fmt"

	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/style"
	"github.com/pirrtools/richframe/internal/styler"
)

// Aliases for the style-source vocabulary so callers of this package do not
// need to import styler.
type (
	CellPos     = styler.CellPos
	CSSProperty = styler.CSSProperty
	StyleMap    = styler.StyleMap
	FormatMap   = styler.FormatMap
	FormatFunc  = styler.FormatFunc
)

// IndexKey is the ColumnWidths key used for the index column.
const IndexKey = "__index__"

// StyleSource is the read-only view of a styler the pipeline needs.
// Compute forces any pending evaluation before the maps are read.
type StyleSource interface {
	Compute() error
	CellStyles() StyleMap
	CellFormats() FormatMap
}

// Justification values accepted for columns.
const (
	JustifyLeft   = "left"
	JustifyCenter = "center"
	JustifyRight  = "right"
	JustifyFull   = "full"
)

// IsValidJustify reports whether j is a known justification.
func IsValidJustify(j string) bool {
	switch j {
	case JustifyLeft, JustifyCenter, JustifyRight, JustifyFull:
		return true
	}
	return false
}

// Column describes one table column.
type Column struct {
	Header      string
	HeaderStyle style.Style
	Style       style.Style
	Justify     string
	// Width fixes the column width when positive.
	Width int
	// MinWidth is the smallest width the column may be drawn at.
	MinWidth int
	IsIndex  bool
}

// Table is an assembled, undrawn table.
type Table struct {
	Columns  []Column
	Rows     [][]style.Text
	Layout   Layout
	Warnings []rferrors.Warning
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns, index included.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// Headers returns the header labels in column order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Header
	}
	return out
}

// Cell returns the styled text at (row, col), index column included.
func (t *Table) Cell(row, col int) (style.Text, error) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return style.Text{}, fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	return t.Rows[row][col], nil
}
