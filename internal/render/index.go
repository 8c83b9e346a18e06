package render

import (
	"fmt"
	"strings"

	"github.com/pirrtools/richframe/internal/frame"
)

// LevelSeparator joins the components of a multi-level index label.
const LevelSeparator = " | "

// DefaultIndexHeader labels an index without usable level names.
const DefaultIndexHeader = "Index"

// FormatLabel converts an index label to text. Missing labels are empty.
func FormatLabel(v any) string {
	if frame.IsMissing(v) {
		return ""
	}
	return frame.FormatValue(v)
}

// FormatMultiLevel joins the formatted components of a tuple label.
func FormatMultiLevel(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatLabel(v)
	}
	return strings.Join(parts, LevelSeparator)
}

// IndexLabel returns the display label of a row.
func IndexLabel(ix frame.Index, row int) string {
	if ix.IsMulti() {
		return FormatMultiLevel(ix.Tuple(row))
	}
	return FormatLabel(ix.Label(row))
}

// IndexHeaderName derives the index column header. A multi-level index with
// any level names joins them, naming unnamed levels "Level_<i>". A flat
// index uses its name. Otherwise the header is "Index".
func IndexHeaderName(ix frame.Index) string {
	names := ix.Names()
	if !ix.IsMulti() {
		if len(names) > 0 && names[0] != "" {
			return names[0]
		}
		return DefaultIndexHeader
	}

	named := false
	for _, n := range names {
		if n != "" {
			named = true
			break
		}
	}
	if !named {
		return DefaultIndexHeader
	}
	parts := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			n = fmt.Sprintf("Level_%d", i)
		}
		parts[i] = n
	}
	return strings.Join(parts, LevelSeparator)
}
