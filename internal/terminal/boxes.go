package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pirrtools/richframe/internal/render"
)

// box pairs a lipgloss border with the outer edges it can draw. Boxes whose
// outer edge is blank never draw sides or caps.
type box struct {
	border lipgloss.Border
	sides  bool
	caps   bool
}

var minimalBorder = lipgloss.Border{
	Top: "─", Bottom: " ", Left: "│", Right: " ",
	TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	MiddleLeft: "╶", MiddleRight: "╴", Middle: "┼", MiddleTop: "╷", MiddleBottom: "╵",
}

var simpleBorder = lipgloss.Border{
	Top: "─", Bottom: "─", Left: " ", Right: " ",
	TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	MiddleLeft: " ", MiddleRight: " ", Middle: "─", MiddleTop: " ", MiddleBottom: " ",
}

var boxes = map[string]box{
	render.BoxRounded:  {border: lipgloss.RoundedBorder(), sides: true, caps: true},
	render.BoxSquare:   {border: lipgloss.NormalBorder(), sides: true, caps: true},
	render.BoxHeavy:    {border: lipgloss.ThickBorder(), sides: true, caps: true},
	render.BoxDouble:   {border: lipgloss.DoubleBorder(), sides: true, caps: true},
	render.BoxASCII:    {border: lipgloss.ASCIIBorder(), sides: true, caps: true},
	render.BoxHidden:   {border: lipgloss.HiddenBorder(), sides: true, caps: true},
	render.BoxMarkdown: {border: lipgloss.MarkdownBorder(), sides: true},
	render.BoxMinimal:  {border: minimalBorder},
	render.BoxSimple:   {border: simpleBorder},
}

// Border returns the lipgloss border drawn for a box name. Unknown names get
// the rounded border.
func Border(name string) lipgloss.Border {
	return lookupBox(name).border
}

func lookupBox(name string) box {
	if b, ok := boxes[name]; ok {
		return b
	}
	return boxes[render.BoxRounded]
}
