package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/pirrtools/richframe/internal/frame"
)

// MeasureColumnWidths returns, per column name, the display width of the
// widest of the header and every cell string. The index column is keyed by
// IndexKey and only measured when showIndex is set. Cells with a formatter
// in formats are measured as formatted.
func MeasureColumnWidths(f *frame.Frame, showIndex bool, formats FormatMap) map[string]int {
	widths := make(map[string]int, f.NumColumns()+1)

	if showIndex {
		ix := f.Index()
		w := runewidth.StringWidth(IndexHeaderName(ix))
		for r := 0; r < f.Rows(); r++ {
			w = max(w, runewidth.StringWidth(IndexLabel(ix, r)))
		}
		widths[IndexKey] = w
	}

	for c := 0; c < f.NumColumns(); c++ {
		col := f.Column(c)
		w := runewidth.StringWidth(col.Name)
		for r, v := range col.Values {
			w = max(w, runewidth.StringWidth(FormatCell(v, formats[CellPos{Row: r, Col: c}])))
		}
		widths[col.Name] = w
	}
	return widths
}
