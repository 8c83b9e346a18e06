// Package style models terminal text styles written as short style strings
// such as "bold white on grey11" or "italic #ff8800 on rgb(10, 20, 30)".
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pirrtools/richframe/internal/color"
)

// Style is a parsed style string. Empty colour fields mean "unset".
type Style struct {
	Fg        string `yaml:"fg,omitempty"`
	Bg        string `yaml:"bg,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Strike    bool   `yaml:"strike,omitempty"`
	Dim       bool   `yaml:"dim,omitempty"`
	Reverse   bool   `yaml:"reverse,omitempty"`
}

var attributes = map[string]func(*Style, bool){
	"bold":      func(s *Style, v bool) { s.Bold = v },
	"b":         func(s *Style, v bool) { s.Bold = v },
	"italic":    func(s *Style, v bool) { s.Italic = v },
	"i":         func(s *Style, v bool) { s.Italic = v },
	"underline": func(s *Style, v bool) { s.Underline = v },
	"u":         func(s *Style, v bool) { s.Underline = v },
	"strike":    func(s *Style, v bool) { s.Strike = v },
	"s":         func(s *Style, v bool) { s.Strike = v },
	"dim":       func(s *Style, v bool) { s.Dim = v },
	"d":         func(s *Style, v bool) { s.Dim = v },
	"reverse":   func(s *Style, v bool) { s.Reverse = v },
	"r":         func(s *Style, v bool) { s.Reverse = v },
}

// Parse reads a style string. Words are attributes ("bold", "not italic"),
// a foreground colour, or "on" followed by a background colour. Colours may
// be hex, rgb(), color(N), a palette number or a name. The empty string and
// "none" yield the zero style.
func Parse(text string) (Style, error) {
	var s Style
	words := tokenize(text)
	if len(words) == 1 && strings.EqualFold(words[0], "none") {
		return s, nil
	}

	for i := 0; i < len(words); i++ {
		word := strings.ToLower(words[i])
		switch {
		case word == "on":
			if i+1 >= len(words) {
				return Style{}, fmt.Errorf("style %q: 'on' without a colour", text)
			}
			i++
			c := color.ParseColor(words[i])
			if !color.IsKnown(c) {
				return Style{}, fmt.Errorf("style %q: unknown background colour %q", text, words[i])
			}
			s.Bg = c
		case word == "not":
			if i+1 >= len(words) {
				return Style{}, fmt.Errorf("style %q: 'not' without an attribute", text)
			}
			i++
			set, ok := attributes[strings.ToLower(words[i])]
			if !ok {
				return Style{}, fmt.Errorf("style %q: unknown attribute %q", text, words[i])
			}
			set(&s, false)
		default:
			if set, ok := attributes[word]; ok {
				set(&s, true)
				continue
			}
			c := color.ParseColor(words[i])
			if !color.IsKnown(c) {
				return Style{}, fmt.Errorf("style %q: unknown colour %q", text, words[i])
			}
			s.Fg = c
		}
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Style {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// tokenize splits on whitespace, keeping parenthesised groups such as
// "rgb(1, 2, 3)" together.
func tokenize(text string) []string {
	var (
		words []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

// IsZero reports whether no attribute or colour is set.
func (s Style) IsZero() bool { return s == Style{} }

// Combine layers other on top of s. Colours set in other replace those in s
// and enabled attributes accumulate.
func (s Style) Combine(other Style) Style {
	out := s
	if other.Fg != "" {
		out.Fg = other.Fg
	}
	if other.Bg != "" {
		out.Bg = other.Bg
	}
	out.Bold = s.Bold || other.Bold
	out.Italic = s.Italic || other.Italic
	out.Underline = s.Underline || other.Underline
	out.Strike = s.Strike || other.Strike
	out.Dim = s.Dim || other.Dim
	out.Reverse = s.Reverse || other.Reverse
	return out
}

// String renders the style back into style-string form.
func (s Style) String() string {
	var parts []string
	for _, a := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"}, {s.Dim, "dim"}, {s.Italic, "italic"},
		{s.Underline, "underline"}, {s.Strike, "strike"}, {s.Reverse, "reverse"},
	} {
		if a.on {
			parts = append(parts, a.name)
		}
	}
	if s.Fg != "" {
		parts = append(parts, s.Fg)
	}
	if s.Bg != "" {
		parts = append(parts, "on", s.Bg)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Lipgloss converts the style into a lipgloss style for drawing.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Fg != "" {
		ls = ls.Foreground(color.ToTerminal(s.Fg))
	}
	if s.Bg != "" {
		ls = ls.Background(color.ToTerminal(s.Bg))
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	if s.Italic {
		ls = ls.Italic(true)
	}
	if s.Underline {
		ls = ls.Underline(true)
	}
	if s.Strike {
		ls = ls.Strikethrough(true)
	}
	if s.Dim {
		ls = ls.Faint(true)
	}
	if s.Reverse {
		ls = ls.Reverse(true)
	}
	return ls
}
