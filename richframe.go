// Package richframe renders data frames as styled terminal tables.
//
// A frame's cell styles come from a Styler (gradients, highlights, CSS
// properties and display formats). The table layout is tuned automatically:
// tables whose cells carry background colours switch to a compact, gap-free
// preset so coloured blocks read as a continuous heat map.
//
//	f, _ := richframe.NewFrame([]richframe.Column{
//		{Name: "Sales", Values: []any{150, 230}},
//		{Name: "Profit", Values: []any{25, 45}},
//	}, nil)
//	richframe.Print(os.Stdout, f, richframe.WithBackgroundGradient("Blues", nil))
package richframe

import (
	"io"

	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/frame"
	"github.com/pirrtools/richframe/internal/preview"
	"github.com/pirrtools/richframe/internal/render"
	"github.com/pirrtools/richframe/internal/styler"
	"github.com/pirrtools/richframe/internal/terminal"
)

type (
	Frame           = frame.Frame
	Column          = frame.Column
	Index           = frame.Index
	Styler          = styler.Styler
	CSSProperty     = styler.CSSProperty
	GradientOptions = styler.GradientOptions
	Axis            = styler.Axis
	Table           = render.Table
	Options         = render.Options
	Theme           = render.Theme
	Layout          = render.Layout
	StyleSource     = render.StyleSource
	Warning         = rferrors.Warning
)

const (
	AxisIndex   = styler.AxisIndex
	AxisColumns = styler.AxisColumns
	AxisTable   = styler.AxisTable
)

// NewFrame builds a frame from columns; a nil index numbers the rows.
func NewFrame(columns []Column, index *Index) (*Frame, error) {
	return frame.New(columns, index)
}

// NewIndex builds a single-level row index.
func NewIndex(labels []any, name string) Index {
	return frame.NewIndex(labels, name)
}

// NewMultiIndex builds a multi-level row index from one tuple per row.
func NewMultiIndex(tuples [][]any, names []string) (Index, error) {
	return frame.NewMultiIndex(tuples, names)
}

// NewStyler starts an empty style pipeline for f.
func NewStyler(f *Frame) *Styler {
	return styler.New(f)
}

// DefaultOptions returns the default render options.
func DefaultOptions() Options {
	return render.DefaultOptions()
}

// ToRich assembles the styled table for f. It never fails: problems with
// styling or options are reported in Table.Warnings.
func ToRich(f *Frame, opts ...Option) *Table {
	s := newSettings(opts)
	options, warnings := s.resolve()
	table := render.Assemble(f, s.source, options)
	if len(warnings) > 0 {
		table.Warnings = append(warnings, table.Warnings...)
	}
	return table
}

// Render assembles and draws the table for f.
func Render(f *Frame, opts ...Option) string {
	s := newSettings(opts)
	return (&terminal.Renderer{Width: s.width}).Render(ToRich(f, opts...))
}

// Print writes the drawn table for f to w.
func Print(w io.Writer, f *Frame, opts ...Option) error {
	_, err := io.WriteString(w, Render(f, opts...)+"\n")
	return err
}

// Preview shows the drawn table in a full-screen pager.
func Preview(f *Frame, opts ...Option) error {
	table := ToRich(f, opts...)
	s := newSettings(opts)
	warnings := make([]string, len(table.Warnings))
	for i, w := range table.Warnings {
		warnings[i] = w.String()
	}
	return preview.Run((&terminal.Renderer{Width: s.width}).Render(table), table.Layout.Title, warnings)
}

// ListProfiles returns the saved profile names.
func ListProfiles(opts ...Option) ([]string, error) {
	m, err := newSettings(opts).manager()
	if err != nil {
		return nil, err
	}
	return m.ListProfiles()
}

// SaveProfile stores options under name in the profile file.
func SaveProfile(name string, options Options, opts ...Option) error {
	m, err := newSettings(opts).manager()
	if err != nil {
		return err
	}
	return m.SaveProfile(&configProfile{Name: name, Options: options})
}
