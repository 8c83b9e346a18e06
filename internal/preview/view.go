package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	positionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) headerView() string {
	title := m.title
	if title == "" {
		title = "Table preview"
	}
	head := titleStyle.Render(title)
	head += ruleStyle.Render(strings.Repeat("─", max(0, m.width-lipgloss.Width(head))))
	if m.showWarnings {
		head = lipgloss.JoinVertical(lipgloss.Left, head, renderWarnings(m.warnings, m.width))
	}
	return head
}

func (m Model) footerView() string {
	pos := positionStyle.Render(m.position())
	rule := ruleStyle.Render(strings.Repeat("─", max(0, m.width-lipgloss.Width(pos))))
	return lipgloss.JoinVertical(lipgloss.Left, rule+pos, m.help.View(m.keys))
}

// position describes the visible line range and scroll percentage.
func (m Model) position() string {
	total := m.viewport.TotalLineCount()
	if total == 0 {
		return "empty"
	}
	first := m.viewport.YOffset + 1
	last := min(total, m.viewport.YOffset+m.viewport.VisibleLineCount())
	return fmt.Sprintf("%d-%d/%d %3.f%%", first, last, total, m.viewport.ScrollPercent()*100)
}
