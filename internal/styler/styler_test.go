package styler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pirrtools/richframe/internal/frame"
)

func numbers() *frame.Frame {
	return frame.MustNew([]frame.Column{
		{Name: "A", Values: []any{1, 2, 3}},
		{Name: "B", Values: []any{10.0, math.NaN(), 30.0}},
		{Name: "C", Values: []any{"x", "y", "z"}},
	}, nil)
}

func propValue(props []CSSProperty, name string) string {
	v := ""
	for _, p := range props {
		if p.Name == name {
			v = p.Value
		}
	}
	return v
}

func TestComputeIsLazyAndRepeatable(t *testing.T) {
	s := New(numbers()).HighlightMax("", AxisIndex, "A")
	assert.Empty(t, s.CellStyles())

	require.NoError(t, s.Compute())
	first := s.CellStyles()
	require.NoError(t, s.Compute())
	assert.Equal(t, first, s.CellStyles())
	assert.Len(t, s.CellStyles()[CellPos{Row: 2, Col: 0}], 1)
}

func TestCloneDoesNotShareQueue(t *testing.T) {
	base := New(numbers()).HighlightMin("red", AxisIndex, "A")
	clone := base.Clone().HighlightMax("blue", AxisIndex, "A")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, clone.Len())

	require.NoError(t, base.Compute())
	assert.NotContains(t, base.CellStyles(), CellPos{Row: 2, Col: 0})
}

func TestComputeFailureClearsMaps(t *testing.T) {
	s := New(numbers()).HighlightNull("", "B").HighlightMax("", AxisIndex, "missing")
	err := s.Compute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highlight_max")
	assert.Empty(t, s.CellStyles())
}

func TestBackgroundGradientColumnwise(t *testing.T) {
	s := New(numbers()).BackgroundGradient("Greys", GradientOptions{})
	require.NoError(t, s.Compute())
	styles := s.CellStyles()

	assert.Equal(t, "#ffffff", propValue(styles[CellPos{0, 0}], "background-color"))
	assert.Equal(t, "#000000", propValue(styles[CellPos{0, 0}], "color"))
	assert.Equal(t, "#000000", propValue(styles[CellPos{2, 0}], "background-color"))
	assert.Equal(t, "#f1f1f1", propValue(styles[CellPos{2, 0}], "color"))

	// NaN and strings are skipped.
	assert.NotContains(t, styles, CellPos{1, 1})
	assert.NotContains(t, styles, CellPos{0, 2})
	assert.Equal(t, "#ffffff", propValue(styles[CellPos{0, 1}], "background-color"))
}

func TestBackgroundGradientTableAxis(t *testing.T) {
	s := New(numbers()).BackgroundGradient("Greys", GradientOptions{Axis: AxisTable, Subset: Subset{"A", "B"}})
	require.NoError(t, s.Compute())
	styles := s.CellStyles()

	assert.Equal(t, "#ffffff", propValue(styles[CellPos{0, 0}], "background-color"))
	assert.Equal(t, "#000000", propValue(styles[CellPos{2, 1}], "background-color"))
	assert.NotEqual(t, "#000000", propValue(styles[CellPos{2, 0}], "background-color"))
}

func TestBackgroundGradientRowAxisAndBounds(t *testing.T) {
	f := frame.MustNew([]frame.Column{
		{Name: "A", Values: []any{0, 5}},
		{Name: "B", Values: []any{10, 5}},
	}, nil)
	s := New(f).TextGradient("Greys", GradientOptions{Axis: AxisColumns})
	require.NoError(t, s.Compute())
	styles := s.CellStyles()
	assert.Equal(t, "#ffffff", propValue(styles[CellPos{0, 0}], "color"))
	assert.Equal(t, "#000000", propValue(styles[CellPos{0, 1}], "color"))
	// A constant row maps to the start of the colormap.
	assert.Equal(t, "#ffffff", propValue(styles[CellPos{1, 0}], "color"))

	vmax := 20.0
	s = New(f).TextGradient("Greys", GradientOptions{Axis: AxisTable, Vmax: &vmax})
	require.NoError(t, s.Compute())
	assert.NotEqual(t, "#000000", propValue(s.CellStyles()[CellPos{0, 1}], "color"))
}

func TestGradientUnknownColormapFails(t *testing.T) {
	s := New(numbers()).BackgroundGradient("not-a-map", GradientOptions{})
	assert.Error(t, s.Compute())
}

func TestHighlightNull(t *testing.T) {
	s := New(numbers()).HighlightNull("")
	require.NoError(t, s.Compute())
	assert.Equal(t, []CSSProperty{{Name: "background-color", Value: "red"}}, s.CellStyles()[CellPos{1, 1}])
	assert.Len(t, s.CellStyles(), 1)
}

func TestApplyMapAndSetProperties(t *testing.T) {
	s := New(numbers()).
		SetProperties([]CSSProperty{{Name: "font-weight", Value: "bold"}}, "C").
		ApplyMap(func(v any) string {
			if v == "y" {
				return "color: red; font-style: italic; bogus"
			}
			return ""
		}, "C")
	require.NoError(t, s.Compute())

	assert.Equal(t, []CSSProperty{
		{Name: "font-weight", Value: "bold"},
		{Name: "color", Value: "red"},
		{Name: "font-style", Value: "italic"},
	}, s.CellStyles()[CellPos{1, 2}])
}

func TestApplyRowwise(t *testing.T) {
	s := New(numbers()).Apply(func(row int, values []any) []string {
		out := make([]string, len(values))
		if row == 0 {
			out[0] = "background-color: blue"
		}
		return out
	}, "A", "C")
	require.NoError(t, s.Compute())
	assert.Equal(t, "blue", propValue(s.CellStyles()[CellPos{0, 0}], "background-color"))
	assert.Len(t, s.CellStyles(), 1)

	bad := New(numbers()).Apply(func(int, []any) []string { return nil })
	assert.Error(t, bad.Compute())
}

func TestParseCSS(t *testing.T) {
	assert.Equal(t, []CSSProperty{
		{Name: "background-color", Value: "#fff"},
		{Name: "color", Value: "rgb(1, 2, 3)"},
	}, ParseCSS(" Background-Color : #fff ;color:rgb(1, 2, 3);;nothing: "))
	assert.Empty(t, ParseCSS(""))
}

func TestGradientOptionsFromMap(t *testing.T) {
	opts, err := GradientOptionsFromMap(map[string]any{
		"axis":   "columns",
		"subset": "A",
		"low":    0.25,
		"vmin":   1,
		"cmap":   "plasma",
	})
	require.NoError(t, err)
	assert.Equal(t, AxisColumns, opts.Axis)
	assert.Equal(t, Subset{"A"}, opts.Subset)
	assert.Equal(t, 0.25, opts.Low)
	require.NotNil(t, opts.Vmin)
	assert.Equal(t, 1.0, *opts.Vmin)
	assert.Equal(t, "plasma", opts.Cmap)

	opts, err = GradientOptionsFromMap(map[string]any{"axis": nil, "subset": []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, AxisTable, opts.Axis)
	assert.Equal(t, Subset{"A", "B"}, opts.Subset)

	_, err = GradientOptionsFromMap(map[string]any{"colour": "red"})
	assert.Error(t, err)
	_, err = GradientOptionsFromMap(map[string]any{"axis": "diagonal"})
	assert.Error(t, err)
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[any]Axis{0: AxisIndex, 1: AxisColumns, "rows": AxisIndex, "COLUMNS": AxisColumns, "none": AxisTable} {
		got, err := ParseAxis(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAxis(2)
	assert.Error(t, err)
}
