package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.LogUIStateChange("viewing", "closed", msg.String())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Warnings):
			if len(m.warnings) > 0 {
				m.showWarnings = !m.showWarnings
				m.resize()
			}
			return m, nil
		case !m.ready:
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(0, 0)
			m.viewport.SetHorizontalStep(horizontalStep)
			m.viewport.SetContent(m.content)
			m.ready = true
			m.logger.LogUIStateChange("waiting", "viewing", "window size received")
		}
		m.resize()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resize fits the viewport between the header and the footer.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.help.Width = m.width
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-chrome)
	// keep the offset valid after the window shrinks or grows
	m.viewport.SetYOffset(m.viewport.YOffset)
}
