package frame

import "fmt"

// Index is a row index. A flat index holds one label per row; a multi-level
// index holds one tuple per row with one label per level.
type Index struct {
	labels [][]any
	names  []string
	multi  bool
}

// NewIndex builds a flat index with an optional name.
func NewIndex(labels []any, name string) Index {
	rows := make([][]any, len(labels))
	for i, l := range labels {
		rows[i] = []any{l}
	}
	return Index{labels: rows, names: []string{name}}
}

// RangeIndex builds the default positional index 0..n-1.
func RangeIndex(n int) Index {
	labels := make([]any, n)
	for i := range labels {
		labels[i] = i
	}
	return NewIndex(labels, "")
}

// NewMultiIndex builds a multi-level index from per-row tuples. names may be
// nil or hold one entry per level; empty entries mark unnamed levels.
func NewMultiIndex(tuples [][]any, names []string) (Index, error) {
	levels := len(names)
	if len(tuples) > 0 {
		levels = len(tuples[0])
	}
	for i, t := range tuples {
		if len(t) != levels {
			return Index{}, fmt.Errorf("index tuple %d has %d levels, expected %d", i, len(t), levels)
		}
	}
	if names != nil && len(names) != levels {
		return Index{}, fmt.Errorf("got %d level names for %d levels", len(names), levels)
	}
	if names == nil {
		names = make([]string, levels)
	}

	rows := make([][]any, len(tuples))
	for i, t := range tuples {
		rows[i] = append([]any(nil), t...)
	}
	return Index{labels: rows, names: append([]string(nil), names...), multi: true}, nil
}

// MultiIndexFromArrays builds a multi-level index from one array per level.
func MultiIndexFromArrays(arrays [][]any, names []string) (Index, error) {
	if len(arrays) == 0 {
		return NewMultiIndex(nil, names)
	}
	n := len(arrays[0])
	for l, a := range arrays {
		if len(a) != n {
			return Index{}, fmt.Errorf("level %d has %d labels, expected %d", l, len(a), n)
		}
	}
	tuples := make([][]any, n)
	for i := 0; i < n; i++ {
		t := make([]any, len(arrays))
		for l := range arrays {
			t[l] = arrays[l][i]
		}
		tuples[i] = t
	}
	return NewMultiIndex(tuples, names)
}

// Len returns the number of rows.
func (ix Index) Len() int { return len(ix.labels) }

// IsMulti reports whether the index has multiple levels.
func (ix Index) IsMulti() bool { return ix.multi }

// Levels returns the number of levels.
func (ix Index) Levels() int {
	if !ix.multi {
		return 1
	}
	return len(ix.names)
}

// Names returns the level names; unnamed levels are empty strings.
func (ix Index) Names() []string { return append([]string(nil), ix.names...) }

// Name returns the name of a flat index.
func (ix Index) Name() string {
	if len(ix.names) == 0 {
		return ""
	}
	return ix.names[0]
}

// Label returns the scalar label of a flat index row.
func (ix Index) Label(row int) any { return ix.labels[row][0] }

// Tuple returns the labels of a row, one per level.
func (ix Index) Tuple(row int) []any { return ix.labels[row] }

func (ix Index) slice(from, to int) Index {
	return Index{labels: ix.labels[from:to], names: ix.names, multi: ix.multi}
}
