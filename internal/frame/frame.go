// Package frame holds the tabular data the renderer reads: named columns of
// scalar values plus a flat or multi-level row index.
package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Column is a named, ordered sequence of scalar values.
type Column struct {
	Name   string
	Values []any
}

// Frame is an immutable rows x columns table with a row index.
type Frame struct {
	columns []Column
	index   Index
	rows    int
}

// New builds a frame from columns. A nil index gets a default positional
// index 0..n-1. All columns and the index must have the same length.
func New(columns []Column, index *Index) (*Frame, error) {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Values)
	} else if index != nil {
		rows = index.Len()
	}

	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", c.Name, len(c.Values), rows)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
	}

	var idx Index
	if index == nil {
		idx = RangeIndex(rows)
	} else {
		idx = *index
		if idx.Len() != rows {
			return nil, fmt.Errorf("index has %d labels, expected %d", idx.Len(), rows)
		}
	}

	cols := make([]Column, len(columns))
	for i, c := range columns {
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		cols[i] = Column{Name: c.Name, Values: vals}
	}

	return &Frame{columns: cols, index: idx, rows: rows}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests and examples.
func MustNew(columns []Column, index *Index) *Frame {
	f, err := New(columns, index)
	if err != nil {
		panic(err)
	}
	return f
}

// FromSeries builds a single-column frame.
func FromSeries(name string, values []any, index *Index) (*Frame, error) {
	return New([]Column{{Name: name, Values: values}}, index)
}

// FromRecords builds a frame from row records. Missing keys become nil.
func FromRecords(columns []string, records []map[string]any, index *Index) (*Frame, error) {
	cols := make([]Column, len(columns))
	for i, name := range columns {
		vals := make([]any, len(records))
		for r, rec := range records {
			vals[r] = rec[name]
		}
		cols[i] = Column{Name: name, Values: vals}
	}
	if len(columns) == 0 && index == nil {
		idx := RangeIndex(len(records))
		index = &idx
	}
	return New(cols, index)
}

// Rows returns the row count.
func (f *Frame) Rows() int { return f.rows }

// NumColumns returns the column count.
func (f *Frame) NumColumns() int { return len(f.columns) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column at position i.
func (f *Frame) Column(i int) Column { return f.columns[i] }

// ColumnPosition returns the position of a named column.
func (f *Frame) ColumnPosition(name string) (int, bool) {
	for i, c := range f.columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// At returns the value at (row, col).
func (f *Frame) At(row, col int) any { return f.columns[col].Values[row] }

// Index returns the row index.
func (f *Frame) Index() Index { return f.index }

// Head returns a frame holding the first n rows.
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.rows {
		n = f.rows
	}
	cols := make([]Column, len(f.columns))
	for i, c := range f.columns {
		cols[i] = Column{Name: c.Name, Values: c.Values[:n]}
	}
	idx := f.index.slice(0, n)
	return MustNew(cols, &idx)
}

// Select returns a frame with only the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		pos, ok := f.ColumnPosition(name)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		cols = append(cols, f.columns[pos])
	}
	idx := f.index
	return New(cols, &idx)
}

// IsNumericColumn reports whether every non-missing value in the column is a number.
// Columns with only missing values are not numeric.
func (f *Frame) IsNumericColumn(col int) bool {
	numeric := false
	for _, v := range f.columns[col].Values {
		if IsMissing(v) {
			continue
		}
		if _, ok := ToFloat(v); !ok {
			return false
		}
		numeric = true
	}
	return numeric
}

// IsMissing reports whether v is nil or a NaN float.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// ToFloat converts numeric scalars to float64. Booleans and strings are not numbers.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// FormatValue is the plain string conversion used when no formatter applies.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// formatFloat writes the shortest round-trip form, always marked as a float:
// "150.0", "0.25", "1e-05", "1e+16", "nan", "inf".
func formatFloat(x float64, bits int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if abs := math.Abs(x); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, bits)
	}
	out := strconv.FormatFloat(x, 'f', -1, bits)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
