package styler

import (
	"math"

	"github.com/pirrtools/richframe/internal/color"
	"github.com/pirrtools/richframe/internal/frame"
)

const (
	lightText = "#f1f1f1"
	darkText  = "#000000"
)

// BackgroundGradient colours cell backgrounds by value along the named
// colormap. Text colour is switched to light or dark by background luminance.
// Non-numeric and missing cells are left alone.
func (s *Styler) BackgroundGradient(cmap string, opts GradientOptions) *Styler {
	return s.push("background_gradient", func(s *Styler) error {
		return s.gradient(cmap, opts, func(hex string) []CSSProperty {
			text := darkText
			if l := color.Luminance(hex); l >= 0 && l < opts.threshold() {
				text = lightText
			}
			return []CSSProperty{
				{Name: "background-color", Value: hex},
				{Name: "color", Value: text},
			}
		})
	})
}

// TextGradient colours cell text by value along the named colormap.
func (s *Styler) TextGradient(cmap string, opts GradientOptions) *Styler {
	return s.push("text_gradient", func(s *Styler) error {
		return s.gradient(cmap, opts, func(hex string) []CSSProperty {
			return []CSSProperty{{Name: "color", Value: hex}}
		})
	})
}

type numericCell struct {
	pos   CellPos
	value float64
}

func (s *Styler) gradient(cmap string, opts GradientOptions, props func(hex string) []CSSProperty) error {
	cm, err := color.Lookup(cmap)
	if err != nil {
		return err
	}
	cols, err := s.columns(opts.Subset)
	if err != nil {
		return err
	}

	for _, group := range s.groups(cols, opts.Axis) {
		lo, hi, ok := bounds(group, opts)
		if !ok {
			continue
		}
		for _, cell := range group {
			hex := cm.Sample(normalise(cell.value, lo, hi))
			s.addProps(cell.pos, props(hex)...)
		}
	}
	return nil
}

// groups collects the numeric cells of the selected columns, split by axis.
func (s *Styler) groups(cols []int, axis Axis) [][]numericCell {
	rows := s.frame.Rows()
	cell := func(r, c int) (numericCell, bool) {
		v := s.frame.At(r, c)
		if frame.IsMissing(v) {
			return numericCell{}, false
		}
		f, ok := frame.ToFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return numericCell{}, false
		}
		return numericCell{pos: CellPos{Row: r, Col: c}, value: f}, true
	}

	var out [][]numericCell
	switch axis {
	case AxisColumns:
		for r := 0; r < rows; r++ {
			var g []numericCell
			for _, c := range cols {
				if nc, ok := cell(r, c); ok {
					g = append(g, nc)
				}
			}
			out = append(out, g)
		}
	case AxisTable:
		var g []numericCell
		for _, c := range cols {
			for r := 0; r < rows; r++ {
				if nc, ok := cell(r, c); ok {
					g = append(g, nc)
				}
			}
		}
		out = append(out, g)
	default:
		for _, c := range cols {
			var g []numericCell
			for r := 0; r < rows; r++ {
				if nc, ok := cell(r, c); ok {
					g = append(g, nc)
				}
			}
			out = append(out, g)
		}
	}
	return out
}

// bounds returns the normalisation range for a group, extended by the low
// and high fractions of the data range.
func bounds(group []numericCell, opts GradientOptions) (float64, float64, bool) {
	if len(group) == 0 {
		return 0, 0, false
	}
	smin, smax := math.Inf(1), math.Inf(-1)
	for _, c := range group {
		smin = math.Min(smin, c.value)
		smax = math.Max(smax, c.value)
	}
	if opts.Vmin != nil {
		smin = *opts.Vmin
	}
	if opts.Vmax != nil {
		smax = *opts.Vmax
	}
	rng := smax - smin
	return smin - rng*opts.Low, smax + rng*opts.High, true
}

func normalise(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
