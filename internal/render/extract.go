package render

import (
	"strings"

	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/styler"
)

const component = "render"

// Extract computes src once and returns its per-cell declarations and
// formatters. A nil source yields empty maps. A failing or panicking source
// yields empty maps and a warning. A *styler.Styler is computed on a clone,
// so one styler may back concurrent renders.
func Extract(src StyleSource) (StyleMap, FormatMap, *rferrors.Warning) {
	if s, ok := src.(*styler.Styler); ok {
		if s == nil {
			return StyleMap{}, FormatMap{}, nil
		}
		src = s.Clone()
	}
	if src == nil {
		return StyleMap{}, FormatMap{}, nil
	}

	type maps struct {
		styles  StyleMap
		formats FormatMap
	}
	out, w := rferrors.Attempt(rferrors.ErrorTypeStyleSource, component, "extract styles", maps{}, func() (maps, error) {
		if err := src.Compute(); err != nil {
			return maps{}, err
		}
		return maps{styles: src.CellStyles(), formats: src.CellFormats()}, nil
	})
	if out.styles == nil {
		out.styles = StyleMap{}
	}
	if out.formats == nil {
		out.formats = FormatMap{}
	}
	return out.styles, out.formats, w
}

// ExtractStyles returns the per-cell declarations of src, with the fallback
// rules of Extract.
func ExtractStyles(src StyleSource) (StyleMap, *rferrors.Warning) {
	styles, _, w := Extract(src)
	return styles, w
}

// ExtractFormats returns the per-cell formatters of src, with the fallback
// rules of Extract.
func ExtractFormats(src StyleSource) (FormatMap, *rferrors.Warning) {
	_, formats, w := Extract(src)
	return formats, w
}

var transparent = map[string]bool{
	"":            true,
	"transparent": true,
	"inherit":     true,
	"initial":     true,
}

func isTransparent(value string) bool {
	return transparent[strings.ToLower(strings.TrimSpace(value))]
}

// HasBackground reports whether any cell declares a visible background colour.
func HasBackground(styles StyleMap) bool {
	for _, props := range styles {
		for _, p := range props {
			name := strings.ToLower(strings.TrimSpace(p.Name))
			if (name == "background-color" || name == "background") && !isTransparent(p.Value) {
				return true
			}
		}
	}
	return false
}
