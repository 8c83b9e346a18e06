package render

import (
	"fmt"
	"time"

	"github.com/pirrtools/richframe/internal/color"
	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/frame"
	"github.com/pirrtools/richframe/internal/logging"
	"github.com/pirrtools/richframe/internal/style"
	"github.com/pirrtools/richframe/internal/styler"
)

// MinBackgroundColumnWidth is the smallest data column width used when cells
// carry backgrounds.
const MinBackgroundColumnWidth = 8

// Assemble builds the styled table for f. src may be nil. Styling failures
// never abort assembly: they are recorded in Table.Warnings and the affected
// feature is skipped.
func Assemble(f *frame.Frame, src StyleSource, opts Options) *Table {
	start := time.Now()
	logger := logging.GetRenderLogger()
	warnings := rferrors.NewWarningChain(logger)

	var titleStyle string
	if theme := resolveTheme(opts, warnings); theme != nil {
		opts, titleStyle = theme.apply(opts)
	}

	styles, formats := mergeLayers(styleLayers(f, src, opts, warnings), warnings)

	hasBg := HasBackground(styles)

	keywords := opts.tableKeywords()
	if _, set := keywords["title_style"]; !set && titleStyle != "" {
		keywords["title_style"] = titleStyle
	}
	layout, errs := PlanLayout(hasBg && opts.AutoOptimize, opts.MinimizeGaps, opts.ManualOverrides, keywords)
	for _, err := range errs {
		warnings.Add(configWarning("plan layout", err))
	}

	var widths map[string]int
	if hasBg {
		widths = MeasureColumnWidths(f, opts.ShowIndex, formats)
	}

	table := &Table{
		Columns: buildColumns(f, opts, hasBg, warnings),
		Layout:  layout,
	}

	indexOverlays := indexPalette(f.Rows(), opts, warnings)
	rowOverlays := alternatingOverlays(opts, warnings)

	ix := f.Index()
	table.Rows = make([][]style.Text, f.Rows())
	for r := 0; r < f.Rows(); r++ {
		row := make([]style.Text, 0, len(table.Columns))
		if opts.ShowIndex {
			var overlay style.Style
			if indexOverlays != nil {
				overlay = indexOverlays[r]
			}
			row = append(row, RenderCell(IndexLabel(ix, r), CellPos{Row: r, Col: -1}, nil, nil, widths[IndexKey], overlay))
		}

		var overlay style.Style
		if rowOverlays != nil {
			overlay = rowOverlays[r%2]
		}
		for c := 0; c < f.NumColumns(); c++ {
			width := 0
			if widths != nil {
				width = widths[f.Column(c).Name]
			}
			row = append(row, RenderCell(f.At(r, c), CellPos{Row: r, Col: c}, styles, formats, width, overlay))
		}
		table.Rows[r] = row
	}

	table.Warnings = warnings.Warnings()
	logger.LogRenderSummary(table.RowCount(), table.ColumnCount(), layout.Compact, len(table.Warnings), time.Since(start))
	return table
}

func configWarning(operation string, err error) *rferrors.Warning {
	return rferrors.NewConfigurationError(component).
		WithOperation(operation).
		WithMessage("option ignored").
		WithCause(err).
		Build().
		AsWarning()
}

func resolveTheme(opts Options, warnings *rferrors.WarningChain) *Theme {
	if opts.ResolvedTheme != nil {
		return opts.ResolvedTheme
	}
	if opts.Theme == "" {
		return nil
	}
	theme, ok := ThemeFromChroma(opts.Theme)
	if !ok {
		warnings.Add(configWarning("resolve theme", fmt.Errorf("unknown theme %q", opts.Theme)))
		return nil
	}
	return &theme
}

// styleLayers returns the caller's source followed by one styler per
// option-driven feature. Each layer is computed on its own, so a failing
// feature cannot take the others down with it.
func styleLayers(f *frame.Frame, src StyleSource, opts Options, warnings *rferrors.WarningChain) []StyleSource {
	var layers []StyleSource
	if src != nil {
		layers = append(layers, src)
	}

	if opts.Bg != "" {
		if cmap, gopts, ok := gradientSetup("background gradient", opts.Bg, color.DefaultColormap, opts.BgKwargs, warnings); ok {
			layers = append(layers, styler.New(f).BackgroundGradient(cmap, gopts))
		}
	}
	if opts.Tg != "" {
		if cmap, gopts, ok := gradientSetup("text gradient", opts.Tg, color.DefaultColormap, opts.TgKwargs, warnings); ok {
			layers = append(layers, styler.New(f).TextGradient(cmap, gopts))
		}
	}

	if opts.Format != nil || opts.NaRep != "" {
		spec := opts.Format
		if err := styler.ValidateFormat(spec); err != nil {
			warnings.Add(configWarning("format", err))
			spec = nil
		}
		if spec != nil || opts.NaRep != "" {
			layers = append(layers, styler.New(f).Format(spec, opts.NaRep))
		}
	}
	return layers
}

// mergeLayers extracts every layer in order. Declarations of later layers
// follow earlier ones and later formatters replace earlier ones. A layer that
// fails contributes nothing but a warning.
func mergeLayers(layers []StyleSource, warnings *rferrors.WarningChain) (StyleMap, FormatMap) {
	styles, formats := StyleMap{}, FormatMap{}
	for _, layer := range layers {
		ls, lf, w := Extract(layer)
		if w != nil {
			warnings.Add(w)
			continue
		}
		for pos, props := range ls {
			styles[pos] = append(styles[pos], props...)
		}
		for pos, fn := range lf {
			formats[pos] = fn
		}
	}
	return styles, formats
}

func gradientSetup(operation, name, fallback string, kwargs map[string]any, warnings *rferrors.WarningChain) (string, styler.GradientOptions, bool) {
	gopts, err := styler.GradientOptionsFromMap(kwargs)
	if err != nil {
		warnings.Add(configWarning(operation, err))
		gopts = styler.GradientOptions{}
	}
	cmap := color.Resolve(name, fallback)
	if gopts.Cmap != "" {
		cmap = color.Resolve(gopts.Cmap, fallback)
	}
	if _, err := color.Lookup(cmap); err != nil {
		warnings.Add(rferrors.NewGradientError(component).
			WithOperation(operation).
			WithMessage("feature skipped").
			WithCause(err).
			Build().
			AsWarning())
		return "", gopts, false
	}
	return cmap, gopts, true
}

func buildColumns(f *frame.Frame, opts Options, hasBg bool, warnings *rferrors.WarningChain) []Column {
	cols := make([]Column, 0, f.NumColumns()+1)

	if opts.ShowIndex {
		justify := opts.IndexJustify
		if justify == "" {
			justify = JustifyLeft
		} else if !IsValidJustify(justify) {
			warnings.Add(configWarning("index justify", fmt.Errorf("unknown justification %q", justify)))
			justify = JustifyLeft
		}
		cols = append(cols, Column{
			Header:      IndexHeaderName(f.Index()),
			HeaderStyle: optionStyle("index_header_style", opts.IndexHeaderStyle, warnings),
			Style:       optionStyle("index_style", opts.IndexStyle, warnings),
			Justify:     justify,
			Width:       opts.IndexWidth,
			IsIndex:     true,
		})
	}

	headerStyle := optionStyle("column_header_style", opts.ColumnHeaderStyle, warnings)
	for c := 0; c < f.NumColumns(); c++ {
		col := Column{
			Header:      f.Column(c).Name,
			HeaderStyle: headerStyle,
			Justify:     JustifyLeft,
		}
		if f.IsNumericColumn(c) {
			col.Justify = JustifyRight
		}
		if hasBg {
			col.MinWidth = MinBackgroundColumnWidth
		}
		cols = append(cols, col)
	}
	return cols
}

func optionStyle(name, value string, warnings *rferrors.WarningChain) style.Style {
	if value == "" {
		return style.Style{}
	}
	s, err := style.Parse(value)
	if err != nil {
		warnings.Add(configWarning(name, err))
		return style.Style{}
	}
	return s
}

// indexPalette returns one overlay per row when an index gradient is
// requested, or nil.
func indexPalette(rows int, opts Options, warnings *rferrors.WarningChain) []style.Style {
	if opts.IndexBg == "" || !opts.ShowIndex {
		return nil
	}
	name := opts.IndexBg
	if cmap, ok := opts.IndexBgKwargs["cmap"].(string); ok && cmap != "" {
		name = cmap
	}
	name = color.Resolve(name, color.DefaultIndexColormap)

	palette, w := color.SafeGradientPalette(name, rows)
	warnings.Add(w)

	overlays := make([]style.Style, rows)
	for i, entry := range palette {
		if entry == "" {
			continue
		}
		s, err := style.Parse(entry)
		if err != nil {
			warnings.Add(configWarning("index gradient", err))
			continue
		}
		overlays[i] = s
	}
	return overlays
}

// alternatingOverlays returns the even and odd row overlays, or nil when
// alternating rows are off.
func alternatingOverlays(opts Options, warnings *rferrors.WarningChain) []style.Style {
	if !opts.AlternatingRows {
		return nil
	}
	return []style.Style{
		optionStyle("alternating_row_colors[0]", opts.AlternatingRowColors[0], warnings),
		optionStyle("alternating_row_colors[1]", opts.AlternatingRowColors[1], warnings),
	}
}
