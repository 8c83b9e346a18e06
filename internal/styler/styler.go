// Package styler accumulates per-cell CSS-like style declarations and display
// formatters over a frame. Operations are queued and only evaluated when
// Compute is called, so a Styler can be cloned and extended cheaply.
package styler

import (
	"fmt"
	"strings"

	"github.com/pirrtools/richframe/internal/frame"
	"github.com/pirrtools/richframe/internal/logging"
)

// CellPos addresses a data cell by row and column position.
type CellPos struct {
	Row int
	Col int
}

// CSSProperty is one "name: value" declaration.
type CSSProperty struct {
	Name  string
	Value string
}

// StyleMap holds the declarations for each styled cell, in application order.
type StyleMap map[CellPos][]CSSProperty

// FormatFunc converts a cell value into its display string.
type FormatFunc func(value any) (string, error)

// FormatMap holds the display formatter for each formatted cell.
type FormatMap map[CellPos]FormatFunc

type operation struct {
	name  string
	apply func(*Styler) error
}

// Styler is a style-accumulation builder bound to one frame.
type Styler struct {
	frame   *frame.Frame
	queue   []operation
	styles  StyleMap
	formats FormatMap
}

// New returns an empty styler for f.
func New(f *frame.Frame) *Styler {
	return &Styler{
		frame:   f,
		styles:  StyleMap{},
		formats: FormatMap{},
	}
}

// Frame returns the frame the styler is bound to.
func (s *Styler) Frame() *frame.Frame { return s.frame }

// Clone returns a styler with a copy of the pending operation queue. Extending
// the clone leaves the original untouched.
func (s *Styler) Clone() *Styler {
	c := New(s.frame)
	c.queue = append([]operation(nil), s.queue...)
	return c
}

// Len returns the number of queued operations.
func (s *Styler) Len() int { return len(s.queue) }

func (s *Styler) push(name string, apply func(*Styler) error) *Styler {
	s.queue = append(s.queue, operation{name: name, apply: apply})
	return s
}

// Compute evaluates the queued operations from scratch. On failure the
// computed maps are left empty and the failing operation is reported.
// Compute writes the receiver; concurrent readers should compute a Clone.
func (s *Styler) Compute() error {
	logger := logging.GetStylerLogger()
	s.styles = StyleMap{}
	s.formats = FormatMap{}

	for i, op := range s.queue {
		if err := op.apply(s); err != nil {
			s.styles = StyleMap{}
			s.formats = FormatMap{}
			return fmt.Errorf("styler operation %d (%s): %w", i, op.name, err)
		}
	}

	logger.Debug("Styler computed",
		"operations", len(s.queue),
		"styled_cells", len(s.styles),
		"formatted_cells", len(s.formats))
	return nil
}

// CellStyles returns the declarations computed by the last Compute.
func (s *Styler) CellStyles() StyleMap { return s.styles }

// CellFormats returns the formatters computed by the last Compute.
func (s *Styler) CellFormats() FormatMap { return s.formats }

func (s *Styler) addProps(pos CellPos, props ...CSSProperty) {
	if len(props) == 0 {
		return
	}
	s.styles[pos] = append(s.styles[pos], props...)
}

// columns resolves a subset of column names to positions. An empty subset
// selects every column.
func (s *Styler) columns(subset []string) ([]int, error) {
	if len(subset) == 0 {
		cols := make([]int, s.frame.NumColumns())
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}
	cols := make([]int, 0, len(subset))
	for _, name := range subset {
		pos, ok := s.frame.ColumnPosition(name)
		if !ok {
			return nil, fmt.Errorf("subset column %q not found", name)
		}
		cols = append(cols, pos)
	}
	return cols, nil
}

// ParseCSS splits a declaration block such as "color: red; font-weight: bold".
// Empty and malformed declarations are dropped.
func ParseCSS(block string) []CSSProperty {
	var props []CSSProperty
	for _, decl := range strings.Split(block, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		props = append(props, CSSProperty{Name: name, Value: value})
	}
	return props
}

// SetProperties applies the same declarations to every cell in subset.
func (s *Styler) SetProperties(props []CSSProperty, subset ...string) *Styler {
	props = append([]CSSProperty(nil), props...)
	return s.push("set_properties", func(s *Styler) error {
		cols, err := s.columns(subset)
		if err != nil {
			return err
		}
		for _, c := range cols {
			for r := 0; r < s.frame.Rows(); r++ {
				s.addProps(CellPos{Row: r, Col: c}, props...)
			}
		}
		return nil
	})
}

// ApplyMap calls fn for every cell in subset and applies the returned CSS
// declaration block.
func (s *Styler) ApplyMap(fn func(value any) string, subset ...string) *Styler {
	return s.push("map", func(s *Styler) error {
		cols, err := s.columns(subset)
		if err != nil {
			return err
		}
		for _, c := range cols {
			for r := 0; r < s.frame.Rows(); r++ {
				s.addProps(CellPos{Row: r, Col: c}, ParseCSS(fn(s.frame.At(r, c)))...)
			}
		}
		return nil
	})
}

// Apply calls fn once per row with that row's values across subset and
// applies the returned CSS blocks, one per value.
func (s *Styler) Apply(fn func(row int, values []any) []string, subset ...string) *Styler {
	return s.push("apply", func(s *Styler) error {
		cols, err := s.columns(subset)
		if err != nil {
			return err
		}
		for r := 0; r < s.frame.Rows(); r++ {
			values := make([]any, len(cols))
			for i, c := range cols {
				values[i] = s.frame.At(r, c)
			}
			blocks := fn(r, values)
			if len(blocks) != len(cols) {
				return fmt.Errorf("apply returned %d styles for %d cells in row %d", len(blocks), len(cols), r)
			}
			for i, c := range cols {
				s.addProps(CellPos{Row: r, Col: c}, ParseCSS(blocks[i])...)
			}
		}
		return nil
	})
}
