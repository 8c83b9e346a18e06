// Package terminal draws assembled tables as text using lipgloss tables.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/pirrtools/richframe/internal/logging"
	"github.com/pirrtools/richframe/internal/render"
	"github.com/pirrtools/richframe/internal/style"
)

// DefaultWidth is used when the terminal width cannot be detected.
const DefaultWidth = 80

var (
	defaultHeaderStyle  = style.Style{Bold: true}
	defaultTitleStyle   = style.Style{Italic: true}
	defaultCaptionStyle = style.Style{Dim: true}
)

// Renderer draws tables.
type Renderer struct {
	// Width is the target width of expanded tables. Zero means the
	// detected terminal width.
	Width int
}

// New returns a renderer that detects the terminal width when needed.
func New() *Renderer { return &Renderer{} }

// DetectWidth returns the width of the terminal on stdout, then $COLUMNS,
// then DefaultWidth.
func DetectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}

func (r *Renderer) targetWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	return DetectWidth()
}

// Render draws t. A nil table or one without columns renders as "".
func (r *Renderer) Render(t *render.Table) string {
	if t == nil || len(t.Columns) == 0 {
		return ""
	}
	logger := logging.GetTerminalLogger()
	layout := t.Layout
	b := lookupBox(layout.Box)
	base := parseStyle(logger, "table style", layout.Style)

	headers := make([]string, len(t.Columns))
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		hs := c.HeaderStyle
		if hs.IsZero() {
			hs = defaultHeaderStyle
		}
		headers[i] = style.Text{Plain: c.Header, Style: base.Combine(hs)}.Render()
		if layout.ShowHeader {
			widths[i] = runewidth.StringWidth(c.Header)
		}
	}

	rows := make([][]string, len(t.Rows))
	for ri, cells := range t.Rows {
		row := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i >= len(cells) {
				continue
			}
			cell := cells[i]
			widths[i] = max(widths[i], cell.Width())
			cell.Style = base.Combine(t.Columns[i].Style).Combine(cell.Style)
			row[i] = cell.Render()
		}
		rows[ri] = row
	}

	for i, c := range t.Columns {
		if c.Width > 0 {
			widths[i] = c.Width
		}
		widths[i] = max(widths[i], c.MinWidth)
	}

	pads := paddings(layout, len(t.Columns))
	fixed := !layout.Expand && layout.Width == 0

	tbl := table.New().
		Border(b.border).
		BorderTop(layout.ShowEdge && b.caps).
		BorderBottom(layout.ShowEdge && b.caps).
		BorderLeft(layout.ShowEdge && b.sides).
		BorderRight(layout.ShowEdge && b.sides).
		BorderHeader(layout.ShowHeader).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(parseStyle(logger, "border style", layout.BorderStyle).Lipgloss()).
		StyleFunc(func(row, col int) lipgloss.Style {
			p := pads[col]
			s := lipgloss.NewStyle().
				Padding(p.Top, p.Right, p.Bottom, p.Left).
				Align(alignment(t.Columns[col].Justify))
			if fixed {
				s = s.Width(widths[col] + p.Left + p.Right)
			}
			return s
		})
	if layout.ShowHeader {
		tbl.Headers(headers...)
	}
	tbl.Rows(rows...)

	switch {
	case layout.Width > 0:
		tbl.Width(layout.Width)
	case layout.Expand:
		tbl.Width(r.targetWidth())
	}

	out := tbl.Render()
	width := lipgloss.Width(out)
	if layout.Title != "" {
		ts := parseStyle(logger, "title style", layout.TitleStyle)
		if ts.IsZero() {
			ts = defaultTitleStyle
		}
		out = lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Text{Plain: layout.Title, Style: ts}.Render()) + "\n" + out
	}
	if layout.Caption != "" {
		cs := parseStyle(logger, "caption style", layout.CaptionStyle)
		if cs.IsZero() {
			cs = defaultCaptionStyle
		}
		out = out + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Text{Plain: layout.Caption, Style: cs}.Render())
	}

	logger.Debug("Table drawn",
		"box", layout.Box,
		"columns", len(t.Columns),
		"rows", len(t.Rows),
		"width", width)
	return out
}

// Fprint draws t with a default renderer and writes it to w.
func Fprint(w io.Writer, t *render.Table) error {
	_, err := fmt.Fprintln(w, New().Render(t))
	return err
}

// paddings resolves per-column padding. Outer padding is dropped when
// PadEdge is off and the left padding of inner columns is reduced by the
// right padding of their neighbour when CollapsePadding is on.
func paddings(l render.Layout, columns int) []render.Padding {
	out := make([]render.Padding, columns)
	for i := range out {
		p := l.Padding
		if l.CollapsePadding && i > 0 {
			p.Left = max(0, p.Left-l.Padding.Right)
		}
		if !l.PadEdge {
			if i == 0 {
				p.Left = 0
			}
			if i == columns-1 {
				p.Right = 0
			}
		}
		out[i] = p
	}
	return out
}

func alignment(justify string) lipgloss.Position {
	switch strings.ToLower(justify) {
	case render.JustifyRight:
		return lipgloss.Right
	case render.JustifyCenter:
		return lipgloss.Center
	}
	return lipgloss.Left
}

func parseStyle(logger *logging.Logger, what, text string) style.Style {
	if text == "" {
		return style.Style{}
	}
	s, err := style.Parse(text)
	if err != nil {
		logger.Warn("Ignoring invalid style", "what", what, "style", text, "error", err.Error())
		return style.Style{}
	}
	return s
}
