package style

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text is a plain string with a single style applied to all of it.
type Text struct {
	Plain string
	Style Style
}

// NewText returns unstyled text.
func NewText(plain string) Text { return Text{Plain: plain} }

// Width returns the display width of the text in terminal cells.
func (t Text) Width() int { return runewidth.StringWidth(t.Plain) }

// Pad right-pads the text with spaces up to width display cells. Text that is
// already as wide or wider is left unchanged.
func (t Text) Pad(width int) Text {
	if gap := width - t.Width(); gap > 0 {
		t.Plain += strings.Repeat(" ", gap)
	}
	return t
}

// Stylize layers s on top of the current style.
func (t Text) Stylize(s Style) Text {
	t.Style = t.Style.Combine(s)
	return t
}

// Overlay replaces the whole style with s when s is not empty.
func (t Text) Overlay(s Style) Text {
	if !s.IsZero() {
		t.Style = s
	}
	return t
}

// Render draws the text with its style applied.
func (t Text) Render() string {
	if t.Style.IsZero() {
		return t.Plain
	}
	return t.Style.Lipgloss().Render(t.Plain)
}
