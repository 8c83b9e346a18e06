package styler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pirrtools/richframe/internal/frame"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		tmpl string
		in   any
		want string
	}{
		{"{:.2f}", 3.14159, "3.14"},
		{"{:,.0f}", 1234567.8, "1,234,568"},
		{"${:,.2f}", 1234.5, "$1,234.50"},
		{"{:.1%}", 0.256, "25.6%"},
		{"{:d}", 42, "42"},
		{"{:+d}", 7, "+7"},
		{"{:,}", -9876543, "-9,876,543"},
		{"{}", "text", "text"},
		{"{0:.3e}", 12000.0, "1.200e+04"},
		{"%.2f", 2.0, "2.00"},
		{"%d units", 5, "5 units"},
		{"%s", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			got, err := Template(tt.tmpl)(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateErrors(t *testing.T) {
	for _, c := range []struct {
		tmpl string
		in   any
	}{
		{"{:.2f}", "abc"},
		{"{:d}", 2.5},
		{"{:>10}", 1},
		{"%d", "abc"},
		{"%.2f", "abc"},
	} {
		_, err := Template(c.tmpl)(c.in)
		assert.Error(t, err, c.tmpl)
	}
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat(nil))
	assert.NoError(t, ValidateFormat("{:.2f}"))
	assert.NoError(t, ValidateFormat(map[string]any{"A": "%d", "B": func(any) string { return "" }}))
	assert.NoError(t, ValidateFormat(map[string]string{"A": "%d"}))
	assert.True(t, errors.Is(ValidateFormat(42), ErrInvalidFormat))
	assert.Error(t, ValidateFormat(map[string]any{"A": 3}))
	assert.Error(t, ValidateFormat([]string{"x"}))
}

func TestFormatAllColumns(t *testing.T) {
	f := frame.MustNew([]frame.Column{
		{Name: "A", Values: []any{1.5, math.NaN()}},
	}, nil)
	s := New(f).Format("{:.2f}", "-")
	require.NoError(t, s.Compute())

	fn := s.CellFormats()[CellPos{0, 0}]
	require.NotNil(t, fn)
	got, err := fn(1.5)
	require.NoError(t, err)
	assert.Equal(t, "1.50", got)

	got, err = s.CellFormats()[CellPos{1, 0}](math.NaN())
	require.NoError(t, err)
	assert.Equal(t, "-", got)
}

func TestFormatMapping(t *testing.T) {
	f := frame.MustNew([]frame.Column{
		{Name: "Price", Values: []any{1.0}},
		{Name: "Qty", Values: []any{3}},
		{Name: "Note", Values: []any{nil}},
	}, nil)
	s := New(f).Format(map[string]any{
		"Price": "${:.2f}",
		"Qty":   func(v any) string { return "x" + frame.FormatValue(v) },
	}, "")
	require.NoError(t, s.Compute())

	formats := s.CellFormats()
	assert.Len(t, formats, 2)
	got, _ := formats[CellPos{0, 0}](1.0)
	assert.Equal(t, "$1.00", got)
	got, _ = formats[CellPos{0, 1}](3)
	assert.Equal(t, "x3", got)
}

func TestFormatNaRepOnly(t *testing.T) {
	f := frame.MustNew([]frame.Column{{Name: "A", Values: []any{nil, 2}}}, nil)
	s := New(f).Format(nil, "n/a")
	require.NoError(t, s.Compute())

	got, _ := s.CellFormats()[CellPos{0, 0}](nil)
	assert.Equal(t, "n/a", got)
	got, _ = s.CellFormats()[CellPos{1, 0}](2)
	assert.Equal(t, "2", got)
}

func TestFormatInvalidSpecFailsCompute(t *testing.T) {
	s := New(numbers()).Format(42, "")
	assert.ErrorIs(t, s.Compute(), ErrInvalidFormat)
}
