package styler

import "github.com/pirrtools/richframe/internal/frame"

// DefaultHighlightColor is used when a highlight colour is left empty.
const DefaultHighlightColor = "yellow"

// HighlightMax sets the background of the largest value in each axis group.
// Ties are all highlighted.
func (s *Styler) HighlightMax(bg string, axis Axis, subset ...string) *Styler {
	return s.push("highlight_max", func(s *Styler) error {
		return s.highlightExtreme(bg, axis, subset, func(a, b float64) bool { return a > b })
	})
}

// HighlightMin sets the background of the smallest value in each axis group.
func (s *Styler) HighlightMin(bg string, axis Axis, subset ...string) *Styler {
	return s.push("highlight_min", func(s *Styler) error {
		return s.highlightExtreme(bg, axis, subset, func(a, b float64) bool { return a < b })
	})
}

func (s *Styler) highlightExtreme(bg string, axis Axis, subset []string, better func(a, b float64) bool) error {
	if bg == "" {
		bg = DefaultHighlightColor
	}
	cols, err := s.columns(subset)
	if err != nil {
		return err
	}
	for _, group := range s.groups(cols, axis) {
		if len(group) == 0 {
			continue
		}
		best := group[0].value
		for _, c := range group[1:] {
			if better(c.value, best) {
				best = c.value
			}
		}
		for _, c := range group {
			if c.value == best {
				s.addProps(c.pos, CSSProperty{Name: "background-color", Value: bg})
			}
		}
	}
	return nil
}

// HighlightNull sets the background of missing cells.
func (s *Styler) HighlightNull(bg string, subset ...string) *Styler {
	if bg == "" {
		bg = "red"
	}
	return s.push("highlight_null", func(s *Styler) error {
		cols, err := s.columns(subset)
		if err != nil {
			return err
		}
		for _, c := range cols {
			for r := 0; r < s.frame.Rows(); r++ {
				if frame.IsMissing(s.frame.At(r, c)) {
					s.addProps(CellPos{Row: r, Col: c}, CSSProperty{Name: "background-color", Value: bg})
				}
			}
		}
		return nil
	})
}
