package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"", Style{}},
		{"none", Style{}},
		{"bold", Style{Bold: true}},
		{"on grey11", Style{Bg: "grey11"}},
		{"bold white on blue", Style{Fg: "white", Bg: "blue", Bold: true}},
		{"italic #ff8800", Style{Fg: "#ff8800", Italic: true}},
		{"on rgb(10, 20, 30)", Style{Bg: "rgb(10, 20, 30)"}},
		{"on rgba(255, 0, 0, 0.5)", Style{Bg: "#ff0000"}},
		{"bold not bold", Style{}},
		{"u s d r", Style{Underline: true, Strike: true, Dim: true, Reverse: true}},
		{"color(21)", Style{Fg: "color(21)"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"on", "not", "not purple", "blinky", "on nowhere"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
	assert.Panics(t, func() { MustParse("blinky") })
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{"bold red on #112233", "italic underline", "on grey11", "none"} {
		s := MustParse(in)
		again, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
	assert.Equal(t, "bold italic red on blue", MustParse("on blue italic red bold").String())
}

func TestCombine(t *testing.T) {
	base := Style{Fg: "red", Bg: "blue", Bold: true}
	got := base.Combine(Style{Bg: "green", Italic: true})
	assert.Equal(t, Style{Fg: "red", Bg: "green", Bold: true, Italic: true}, got)
}

func TestLipgloss(t *testing.T) {
	ls := MustParse("bold #ff0000 on grey11").Lipgloss()
	assert.True(t, ls.GetBold())
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.Color("#ff0000")), ls.GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.ANSIColor(234)), ls.GetBackground())
}

func TestTextPad(t *testing.T) {
	assert.Equal(t, "ab   ", NewText("ab").Pad(5).Plain)
	assert.Equal(t, "abcdef", NewText("abcdef").Pad(3).Plain)
	assert.Equal(t, "日本 ", NewText("日本").Pad(5).Plain)
	assert.Equal(t, 5, NewText("日本").Pad(5).Width())
}

func TestTextOverlayReplaces(t *testing.T) {
	txt := NewText("x").Stylize(Style{Fg: "red", Bold: true, Bg: "blue"})

	over := txt.Overlay(MustParse("on grey11"))
	assert.Equal(t, Style{Bg: "grey11"}, over.Style)

	kept := txt.Overlay(Style{})
	assert.Equal(t, txt.Style, kept.Style)
}

func TestTextRenderPlain(t *testing.T) {
	assert.Equal(t, "plain", NewText("plain").Render())
	assert.Contains(t, NewText("styled").Stylize(Style{Bold: true}).Render(), "styled")
}
