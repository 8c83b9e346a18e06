package frame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sales() *Frame {
	return MustNew([]Column{
		{Name: "Sales", Values: []any{150, 230}},
		{Name: "Profit", Values: []any{25, 45}},
	}, nil)
}

func TestNewDefaultsToRangeIndex(t *testing.T) {
	f := sales()
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"Sales", "Profit"}, f.Columns())
	assert.Equal(t, 1, f.Index().Label(1))
	assert.False(t, f.Index().IsMulti())
	assert.Equal(t, "", f.Index().Name())
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]Column{
		{Name: "A", Values: []any{1, 2}},
		{Name: "B", Values: []any{1}},
	}, nil)
	require.Error(t, err)
}

func TestNewRejectsIndexLengthMismatch(t *testing.T) {
	idx := NewIndex([]any{"a"}, "")
	_, err := New([]Column{{Name: "A", Values: []any{1, 2}}}, &idx)
	require.Error(t, err)
}

func TestNewRejectsDuplicateColumns(t *testing.T) {
	_, err := New([]Column{{Name: "A"}, {Name: "A"}}, nil)
	require.Error(t, err)
}

func TestMultiIndexFromArrays(t *testing.T) {
	idx, err := MultiIndexFromArrays([][]any{{"A", "A", "B"}, {"one", "two", "one"}}, []string{"first", "second"})
	require.NoError(t, err)

	assert.True(t, idx.IsMulti())
	assert.Equal(t, 2, idx.Levels())
	assert.Equal(t, []any{"A", "two"}, idx.Tuple(1))
	assert.Equal(t, []string{"first", "second"}, idx.Names())
}

func TestMultiIndexRejectsUnevenTuples(t *testing.T) {
	_, err := NewMultiIndex([][]any{{"a", 1}, {"b"}}, nil)
	require.Error(t, err)

	_, err = NewMultiIndex([][]any{{"a", 1}}, []string{"only"})
	require.Error(t, err)
}

func TestHeadAndSelect(t *testing.T) {
	f := MustNew([]Column{
		{Name: "A", Values: []any{1, 2, 3}},
		{Name: "B", Values: []any{"x", "y", "z"}},
	}, nil)

	h := f.Head(2)
	assert.Equal(t, 2, h.Rows())
	assert.Equal(t, "y", h.At(1, 1))

	s, err := f.Select("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, s.Columns())

	_, err = f.Select("missing")
	require.Error(t, err)
}

func TestFromSeriesAndRecords(t *testing.T) {
	idx := NewIndex([]any{"a", "b"}, "letters")
	s, err := FromSeries("values", []any{1, 2}, &idx)
	require.NoError(t, err)
	assert.Equal(t, []string{"values"}, s.Columns())
	assert.Equal(t, "letters", s.Index().Name())

	r, err := FromRecords([]string{"A", "B"}, []map[string]any{{"A": 1}, {"A": 2, "B": "x"}}, nil)
	require.NoError(t, err)
	assert.Nil(t, r.At(0, 1))
	assert.Equal(t, "x", r.At(1, 1))
}

func TestIsNumericColumn(t *testing.T) {
	f := MustNew([]Column{
		{Name: "n", Values: []any{1, math.NaN(), 2.5}},
		{Name: "s", Values: []any{"a", 1, 2}},
		{Name: "b", Values: []any{true, false, true}},
		{Name: "empty", Values: []any{nil, nil, nil}},
	}, nil)

	assert.True(t, f.IsNumericColumn(0))
	assert.False(t, f.IsNumericColumn(1))
	assert.False(t, f.IsNumericColumn(2))
	assert.False(t, f.IsNumericColumn(3))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{"text", "text"},
		{150, "150"},
		{2.5, "2.5"},
		{3.0, "3.0"},
		{float32(150), "150.0"},
		{-0.5, "-0.5"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{math.NaN(), "nan"},
		{math.Inf(-1), "-inf"},
		{true, "true"},
		{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "2021-01-01"},
		{time.Date(2021, 1, 1, 9, 30, 0, 0, time.UTC), "2021-01-01 09:30:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}
