package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	warningPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder(), false, true, true, true).
				BorderForeground(lipgloss.Color("#FAB387")).
				Padding(0, 1)

	warningHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAB387"))

	warningLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CDD6F4"))
)

// renderWarnings draws the styling problems met while building the table.
func renderWarnings(warnings []string, width int) string {
	if len(warnings) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(warningHeaderStyle.Render(fmt.Sprintf("⚠ %d styling warning(s), features skipped", len(warnings))))
	for _, w := range warnings {
		builder.WriteRune('\n')
		builder.WriteString(warningLineStyle.Render("• " + w))
	}

	pane := warningPaneStyle
	if width > 4 {
		pane = pane.Width(width - 2)
	}
	return pane.Render(builder.String())
}
