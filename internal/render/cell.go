package render

import (
	"strings"

	"github.com/pirrtools/richframe/internal/color"
	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/frame"
	"github.com/pirrtools/richframe/internal/style"
)

// FormatCell converts a value with fn, falling back to the plain conversion
// when fn is nil, fails or panics.
func FormatCell(value any, fn FormatFunc) string {
	if fn == nil {
		return frame.FormatValue(value)
	}
	out, err := rferrors.Protect(func() (string, error) { return fn(value) })
	if err != nil {
		return frame.FormatValue(value)
	}
	return out
}

// CSSStyle folds declarations into a style in list order, so later
// declarations of the same attribute win. Unknown properties are ignored.
func CSSStyle(props []CSSProperty) style.Style {
	var s style.Style
	for _, p := range props {
		value := strings.TrimSpace(p.Value)
		switch strings.ToLower(strings.TrimSpace(p.Name)) {
		case "background-color", "background":
			if !isTransparent(value) {
				s.Bg = color.ParseColor(value)
			}
		case "color":
			if !isTransparent(value) {
				s.Fg = color.ParseColor(value)
			}
		case "font-weight":
			switch strings.ToLower(value) {
			case "bold", "bolder", "600", "700", "800", "900":
				s.Bold = true
			case "normal", "lighter", "400":
				s.Bold = false
			}
		case "font-style":
			switch strings.ToLower(value) {
			case "italic", "oblique":
				s.Italic = true
			case "normal":
				s.Italic = false
			}
		case "text-decoration", "text-decoration-line":
			for _, d := range strings.Fields(strings.ToLower(value)) {
				switch d {
				case "underline":
					s.Underline = true
				case "line-through":
					s.Strike = true
				case "none":
					s.Underline, s.Strike = false, false
				}
			}
		case "opacity":
			if value != "1" && value != "1.0" {
				s.Dim = true
			}
		}
	}
	return s
}

// RenderCell produces the styled text of one data cell: format the value,
// pad it to width when width is positive, apply the cell's declarations,
// then let a non-empty overlay replace the resulting style.
func RenderCell(value any, pos CellPos, styles StyleMap, formats FormatMap, width int, overlay style.Style) style.Text {
	text := style.NewText(FormatCell(value, formats[pos]))
	if width > 0 {
		text = text.Pad(width)
	}
	if props := styles[pos]; len(props) > 0 {
		text = text.Stylize(CSSStyle(props))
	}
	return text.Overlay(overlay)
}
