package styler

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pirrtools/richframe/internal/frame"
)

// ErrInvalidFormat is returned for a formatter of an unsupported type.
var ErrInvalidFormat = errors.New("format must be a string, a function or a mapping of column to either")

// ValidateFormat checks that spec is usable by Format: nil, a format string,
// a FormatFunc, a func(any) string, or a map from column name to any of
// those.
func ValidateFormat(spec any) error {
	switch x := spec.(type) {
	case nil, string, FormatFunc, func(any) (string, error), func(any) string:
		return nil
	case map[string]any:
		for col, v := range x {
			if _, ok := v.(map[string]any); ok {
				return fmt.Errorf("column %q: %w", col, ErrInvalidFormat)
			}
			if err := ValidateFormat(v); err != nil {
				return fmt.Errorf("column %q: %w", col, err)
			}
		}
		return nil
	case map[string]string, map[string]FormatFunc:
		return nil
	}
	return fmt.Errorf("%w (got %T)", ErrInvalidFormat, spec)
}

// Format registers display formatters for the cells in subset. Missing
// values render as naRep when it is not empty. With a mapping, columns that
// have no entry keep the plain conversion.
func (s *Styler) Format(spec any, naRep string, subset ...string) *Styler {
	return s.push("format", func(s *Styler) error {
		if err := ValidateFormat(spec); err != nil {
			return err
		}
		cols, err := s.columns(subset)
		if err != nil {
			return err
		}
		for _, c := range cols {
			fn := columnFormatter(spec, s.frame.Column(c).Name)
			if fn == nil && naRep == "" {
				continue
			}
			fn = withNaRep(fn, naRep)
			for r := 0; r < s.frame.Rows(); r++ {
				s.formats[CellPos{Row: r, Col: c}] = fn
			}
		}
		return nil
	})
}

func columnFormatter(spec any, column string) FormatFunc {
	switch x := spec.(type) {
	case map[string]any:
		v, ok := x[column]
		if !ok {
			return nil
		}
		return toFormatFunc(v)
	case map[string]string:
		v, ok := x[column]
		if !ok {
			return nil
		}
		return toFormatFunc(v)
	case map[string]FormatFunc:
		return x[column]
	}
	return toFormatFunc(spec)
}

func toFormatFunc(v any) FormatFunc {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return Template(x)
	case FormatFunc:
		return x
	case func(any) (string, error):
		return x
	case func(any) string:
		return func(v any) (string, error) { return x(v), nil }
	}
	return nil
}

func withNaRep(fn FormatFunc, naRep string) FormatFunc {
	if fn == nil {
		fn = func(v any) (string, error) { return frame.FormatValue(v), nil }
	}
	if naRep == "" {
		return fn
	}
	return func(v any) (string, error) {
		if frame.IsMissing(v) {
			return naRep, nil
		}
		return fn(v)
	}
}

var fieldPattern = regexp.MustCompile(`\{0?(?::([^{}]*))?\}`)

// Template compiles a format string into a FormatFunc. Strings containing a
// "{...}" field use the brace syntax ("{:.2f}", "{:,.0f}", "${:,.2f}",
// "{:.1%}"); anything else is a fmt verb string such as "%.2f". A fmt string
// that does not fit the value yields an error.
func Template(tmpl string) FormatFunc {
	if fieldPattern.MatchString(tmpl) {
		return func(v any) (string, error) {
			var ferr error
			out := fieldPattern.ReplaceAllStringFunc(tmpl, func(field string) string {
				spec := fieldPattern.FindStringSubmatch(field)[1]
				s, err := formatSpec(v, spec)
				if err != nil && ferr == nil {
					ferr = err
				}
				return s
			})
			if ferr != nil {
				return "", ferr
			}
			return out, nil
		}
	}
	return func(v any) (string, error) {
		out := fmt.Sprintf(tmpl, v)
		if strings.Contains(out, "%!") {
			return "", fmt.Errorf("format %q does not apply to %T", tmpl, v)
		}
		return out, nil
	}
}

var specPattern = regexp.MustCompile(`^([+ ])?(,)?(?:\.(\d+))?([fFeEgGdsn%])?$`)

// formatSpec handles the [sign][,][.precision][type] subset of the brace
// format mini-language.
func formatSpec(v any, spec string) (string, error) {
	m := specPattern.FindStringSubmatch(spec)
	if m == nil {
		return "", fmt.Errorf("unsupported format spec %q", spec)
	}
	sign, grouping, precText, kind := m[1], m[2] != "", m[3], m[4]

	if kind == "" && precText == "" && !grouping && sign == "" {
		return frame.FormatValue(v), nil
	}
	if kind == "s" {
		return frame.FormatValue(v), nil
	}

	x, ok := frame.ToFloat(v)
	if !ok {
		return "", fmt.Errorf("format spec %q needs a number, got %T", spec, v)
	}

	prec := -1
	if precText != "" {
		prec, _ = strconv.Atoi(precText)
	}

	var out string
	switch kind {
	case "d", "n":
		if x != math.Trunc(x) {
			return "", fmt.Errorf("format spec %q needs an integer, got %v", spec, v)
		}
		out = strconv.FormatFloat(x, 'f', 0, 64)
	case "f", "F":
		out = strconv.FormatFloat(x, 'f', defaultPrec(prec, 6), 64)
	case "e", "E":
		out = strconv.FormatFloat(x, kind[0], defaultPrec(prec, 6), 64)
	case "g", "G":
		out = strconv.FormatFloat(x, kind[0], prec, 64)
	case "%":
		out = strconv.FormatFloat(x*100, 'f', defaultPrec(prec, 6), 64) + "%"
	default:
		if prec >= 0 {
			out = strconv.FormatFloat(x, 'g', prec, 64)
		} else {
			out = frame.FormatValue(v)
		}
	}

	if grouping {
		out = groupThousands(out)
	}
	if sign != "" && !strings.HasPrefix(out, "-") {
		if sign == "+" {
			out = "+" + out
		} else {
			out = " " + out
		}
	}
	return out, nil
}

func defaultPrec(prec, def int) int {
	if prec < 0 {
		return def
	}
	return prec
}

// groupThousands inserts commas into the integer part of a plain decimal.
func groupThousands(num string) string {
	neg := strings.HasPrefix(num, "-")
	if neg {
		num = num[1:]
	}
	end := strings.IndexAny(num, ".eE%")
	if end < 0 {
		end = len(num)
	}
	intPart, rest := num[:end], num[end:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String() + rest
	}
	return b.String() + rest
}
