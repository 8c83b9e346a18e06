package render

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pirrtools/richframe/internal/frame"
	"github.com/pirrtools/richframe/internal/style"
	"github.com/pirrtools/richframe/internal/styler"
)

func salesFrame() *frame.Frame {
	return frame.MustNew([]frame.Column{
		{Name: "Sales", Values: []any{150, 230}},
		{Name: "Profit", Values: []any{25, 45}},
	}, nil)
}

func allBackground(f *frame.Frame, bg string) *styler.Styler {
	return styler.New(f).SetProperties([]styler.CSSProperty{{Name: "background-color", Value: bg}})
}

func TestAssemblePlainTableIsSpacious(t *testing.T) {
	table := Assemble(salesFrame(), nil, DefaultOptions())

	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"Index", "Sales", "Profit"}, table.Headers())
	assert.Equal(t, BoxRounded, table.Layout.Box)
	assert.Equal(t, Padding{Top: 0, Right: 1, Bottom: 0, Left: 1}, table.Layout.Padding)
	assert.Empty(t, table.Warnings)

	cell, err := table.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "230", cell.Plain)
	assert.True(t, cell.Style.IsZero())

	assert.True(t, table.Columns[0].IsIndex)
	assert.Equal(t, JustifyRight, table.Columns[1].Justify)
	assert.Zero(t, table.Columns[1].MinWidth)
}

func TestAssembleBackgroundsSwitchToCompact(t *testing.T) {
	f := salesFrame()
	table := Assemble(f, allBackground(f, "#336699"), DefaultOptions())

	assert.Equal(t, BoxMinimal, table.Layout.Box)
	assert.Equal(t, Padding{}, table.Layout.Padding)
	assert.True(t, table.Layout.CollapsePadding)
	for _, col := range table.Columns[1:] {
		assert.GreaterOrEqual(t, col.MinWidth, MinBackgroundColumnWidth)
	}

	// Cells are padded to the measured column width.
	cell, _ := table.Cell(0, 1)
	assert.Equal(t, "150  ", cell.Plain)
	assert.Equal(t, "#336699", cell.Style.Bg)
	idx, _ := table.Cell(0, 0)
	assert.Equal(t, "0    ", idx.Plain)
}

func TestAssembleAutoOptimizeOffKeepsSpacious(t *testing.T) {
	f := salesFrame()
	opts := DefaultOptions()
	opts.AutoOptimize = false
	table := Assemble(f, allBackground(f, "red"), opts)
	assert.Equal(t, BoxRounded, table.Layout.Box)

	opts = DefaultOptions()
	opts.MinimizeGaps = true
	table = Assemble(f, nil, opts)
	assert.Equal(t, BoxMinimal, table.Layout.Box)
}

func TestAssembleAlternatingRowsOverlayWins(t *testing.T) {
	f := frame.MustNew([]frame.Column{{Name: "A", Values: []any{1, 2, 3, 4}}}, nil)
	opts := DefaultOptions()
	opts.AlternatingRows = true
	table := Assemble(f, allBackground(f, "blue"), opts)

	for r := 0; r < 4; r++ {
		cell, _ := table.Cell(r, 1)
		if r%2 == 1 {
			assert.Equal(t, style.Style{Bg: "grey11"}, cell.Style, "row %d", r)
		} else {
			assert.Equal(t, style.Style{Bg: "blue"}, cell.Style, "row %d", r)
		}
		idx, _ := table.Cell(r, 0)
		assert.True(t, idx.Style.IsZero(), "index row %d", r)
	}
}

func TestAssembleMultiIndex(t *testing.T) {
	idx, err := frame.MultiIndexFromArrays([][]any{{"bar", "bar", "baz"}, {"one", "two", "one"}}, []string{"first", "second"})
	require.NoError(t, err)
	f := frame.MustNew([]frame.Column{{Name: "v", Values: []any{1, 2, 3}}}, &idx)

	table := Assemble(f, nil, DefaultOptions())
	assert.Equal(t, "first | second", table.Columns[0].Header)
	cell, _ := table.Cell(0, 0)
	assert.Equal(t, "bar | one", cell.Plain)
}

func TestAssembleHideIndex(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowIndex = false
	opts.IndexBg = "gradient"
	table := Assemble(salesFrame(), nil, opts)
	assert.Equal(t, []string{"Sales", "Profit"}, table.Headers())
	assert.Len(t, table.Rows[0], 2)
}

func TestAssembleIsIdempotent(t *testing.T) {
	f := salesFrame()
	s := styler.New(f).HighlightMax("", styler.AxisIndex)
	opts := DefaultOptions()
	opts.Bg = "gradient"
	opts.AlternatingRows = true
	opts.Format = "{:.1f}"

	first := Assemble(f, s, opts)
	second := Assemble(f, s, opts)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Len(), "caller styler must not be extended")
}

func TestAssembleBuiltinGradientOverridesStyler(t *testing.T) {
	f := salesFrame()
	opts := DefaultOptions()
	opts.Bg = "Greys"
	table := Assemble(f, allBackground(f, "red"), opts)

	low, _ := table.Cell(0, 1)
	high, _ := table.Cell(1, 1)
	assert.Equal(t, "#ffffff", low.Style.Bg)
	assert.Equal(t, "#000000", high.Style.Bg)
	assert.Equal(t, "#f1f1f1", high.Style.Fg)
}

func TestAssembleTextGradientWithKwargs(t *testing.T) {
	f := salesFrame()
	opts := DefaultOptions()
	opts.Tg = "Greys"
	opts.TgKwargs = map[string]any{"subset": "Profit"}
	table := Assemble(f, nil, opts)

	sales, _ := table.Cell(0, 1)
	assert.Empty(t, sales.Style.Fg)
	profit, _ := table.Cell(1, 2)
	assert.Equal(t, "#000000", profit.Style.Fg)
	assert.Equal(t, BoxRounded, table.Layout.Box)
}

func TestAssembleUnknownColormapWarns(t *testing.T) {
	opts := DefaultOptions()
	opts.Bg = "invalid_colormap_name"
	opts.IndexBg = "also_invalid"
	table := Assemble(salesFrame(), nil, opts)

	require.Len(t, table.Warnings, 2)
	assert.Equal(t, BoxRounded, table.Layout.Box)
	for r := range table.Rows {
		for _, cell := range table.Rows[r] {
			assert.True(t, cell.Style.IsZero())
		}
	}
}

func TestAssembleIndexGradient(t *testing.T) {
	opts := DefaultOptions()
	opts.IndexBg = "gradient"
	opts.IndexBgKwargs = map[string]any{"cmap": "Greys"}
	table := Assemble(salesFrame(), nil, opts)

	first, _ := table.Cell(0, 0)
	last, _ := table.Cell(1, 0)
	assert.Equal(t, "#ffffff", first.Style.Bg)
	assert.Equal(t, "#000000", last.Style.Bg)
	data, _ := table.Cell(0, 1)
	assert.True(t, data.Style.IsZero())
}

func TestAssembleFormatOptions(t *testing.T) {
	f := frame.MustNew([]frame.Column{{Name: "x", Values: []any{1.234, nil}}}, nil)
	opts := DefaultOptions()
	opts.Format = map[string]any{"x": "{:.2f}"}
	opts.NaRep = "-"
	table := Assemble(f, nil, opts)

	a, _ := table.Cell(0, 1)
	b, _ := table.Cell(1, 1)
	assert.Equal(t, "1.23", a.Plain)
	assert.Equal(t, "-", b.Plain)
	assert.Empty(t, table.Warnings)

	opts.Format = 42
	table = Assemble(f, nil, opts)
	require.Len(t, table.Warnings, 1)
	b, _ = table.Cell(1, 1)
	assert.Equal(t, "-", b.Plain)
}

func TestAssembleLayoutOptionPrecedence(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "From options"
	opts.BorderStyle = "red"
	box := BoxHeavy
	opts.Box = &box
	opts.Kwargs = map[string]any{"title": "From kwargs", "box": BoxDouble, "bogus": 1}

	table := Assemble(salesFrame(), nil, opts)
	assert.Equal(t, "From kwargs", table.Layout.Title)
	assert.Equal(t, BoxDouble, table.Layout.Box)
	assert.Equal(t, "red", table.Layout.BorderStyle)
	assert.Len(t, table.Warnings, 1)
}

func TestAssembleStyleOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.ColumnHeaderStyle = "bold magenta"
	opts.IndexStyle = "dim"
	opts.IndexHeaderStyle = "not a style at all"
	opts.IndexJustify = "sideways"
	table := Assemble(salesFrame(), nil, opts)

	assert.Equal(t, style.Style{Fg: "magenta", Bold: true}, table.Columns[1].HeaderStyle)
	assert.Equal(t, style.Style{Dim: true}, table.Columns[0].Style)
	assert.True(t, table.Columns[0].HeaderStyle.IsZero())
	assert.Equal(t, JustifyLeft, table.Columns[0].Justify)
	assert.Len(t, table.Warnings, 2)
}

func TestAssembleTheme(t *testing.T) {
	opts := DefaultOptions()
	opts.Theme = "monokai"
	opts.ColumnHeaderStyle = "underline"
	table := Assemble(salesFrame(), nil, opts)

	assert.Equal(t, style.Style{Underline: true}, table.Columns[1].HeaderStyle)
	assert.True(t, table.Columns[0].HeaderStyle.Bold)
	assert.NotEmpty(t, table.Layout.BorderStyle)
	assert.Empty(t, table.Warnings)

	opts.Theme = "no-such-theme"
	table = Assemble(salesFrame(), nil, opts)
	assert.Len(t, table.Warnings, 1)

	opts.Theme = ""
	opts.ResolvedTheme = &Theme{Name: "custom", BorderStyle: "blue", TitleStyle: "italic"}
	table = Assemble(salesFrame(), nil, opts)
	assert.Equal(t, "blue", table.Layout.BorderStyle)
	assert.Equal(t, "italic", table.Layout.TitleStyle)
}

type staticSource struct {
	styles  StyleMap
	formats FormatMap
}

func (s staticSource) Compute() error         { return nil }
func (s staticSource) CellStyles() StyleMap   { return s.styles }
func (s staticSource) CellFormats() FormatMap { return s.formats }

func TestAssembleLayersBuiltinsOverForeignSource(t *testing.T) {
	f := salesFrame()
	src := staticSource{
		styles: StyleMap{
			{Row: 0, Col: 0}: {{Name: "background-color", Value: "red"}, {Name: "font-weight", Value: "bold"}},
		},
	}
	opts := DefaultOptions()
	opts.Bg = "Greys"
	table := Assemble(f, src, opts)

	cell, _ := table.Cell(0, 1)
	assert.Equal(t, "#ffffff", cell.Style.Bg)
	assert.True(t, cell.Style.Bold)
	assert.Empty(t, table.Warnings)
}

func TestAssembleFailingBuiltinKeepsCallerStyles(t *testing.T) {
	f := salesFrame()
	s := styler.New(f).SetProperties([]styler.CSSProperty{{Name: "font-weight", Value: "bold"}})
	opts := DefaultOptions()
	opts.Bg = "Blues"
	opts.BgKwargs = map[string]any{"subset": []any{"Nope"}}
	opts.Tg = "Greys"
	opts.Format = "{:.1f}"
	table := Assemble(f, s, opts)

	require.Len(t, table.Warnings, 1)
	assert.Contains(t, table.Warnings[0].String(), "Nope")
	assert.Equal(t, BoxRounded, table.Layout.Box)

	cell, _ := table.Cell(1, 1)
	assert.True(t, cell.Style.Bold)
	assert.Empty(t, cell.Style.Bg)
	assert.Equal(t, "#000000", cell.Style.Fg)
	assert.Equal(t, "230.0", cell.Plain)
}

func TestAssembleFailingSourceKeepsBuiltins(t *testing.T) {
	opts := DefaultOptions()
	opts.Bg = "Greys"
	table := Assemble(salesFrame(), brokenSource{}, opts)

	require.Len(t, table.Warnings, 1)
	high, _ := table.Cell(1, 1)
	assert.Equal(t, "#000000", high.Style.Bg)
}

func TestAssembleFailingSourceWarnsOnce(t *testing.T) {
	for _, src := range []StyleSource{brokenSource{}, brokenSource{panics: true}} {
		table := Assemble(salesFrame(), src, DefaultOptions())
		assert.Len(t, table.Warnings, 1)
	}
}

func TestAssembleConcurrentRendersShareStyler(t *testing.T) {
	f := salesFrame()
	s := styler.New(f).HighlightMax("", styler.AxisIndex)
	want := Assemble(f, s, DefaultOptions())

	const renders = 8
	tables := make([]*Table, renders)
	var wg sync.WaitGroup
	wg.Add(renders)
	for i := range renders {
		go func(i int) {
			defer wg.Done()
			tables[i] = Assemble(f, s, DefaultOptions())
		}(i)
	}
	wg.Wait()

	for i, got := range tables {
		assert.Equal(t, want, got, "render %d", i)
	}
	assert.Empty(t, s.CellStyles(), "caller styler must not be computed in place")
}
