// Package preview shows rendered tables in a scrollable full-screen pager.
// Tables wider or taller than the terminal can be scrolled in both
// directions.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pirrtools/richframe/internal/logging"
)

// horizontalStep is the number of columns moved per left/right key press.
const horizontalStep = 4

// KeyMap holds the pager bindings that the viewport does not handle itself.
type KeyMap struct {
	Top      key.Binding
	Bottom   key.Binding
	Help     key.Binding
	Warnings key.Binding
	Quit     key.Binding

	scroll viewport.KeyMap
}

// DefaultKeyMap returns less-like bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "bottom"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Warnings: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warnings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		scroll: viewport.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll.Down, k.scroll.Up, k.scroll.Right, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.scroll.Down, k.scroll.Up, k.scroll.Left, k.scroll.Right},
		{k.scroll.PageDown, k.scroll.PageUp, k.scroll.HalfPageDown, k.scroll.HalfPageUp},
		{k.Top, k.Bottom, k.Warnings, k.Help, k.Quit},
	}
}

// Model is the pager state.
type Model struct {
	title    string
	content  string
	warnings []string

	showWarnings bool

	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	ready  bool
	width  int
	height int

	logger *logging.Logger
}

// New returns a pager for already rendered content. Warnings are shown in
// a pane above the content until toggled off.
func New(content, title string, warnings []string) Model {
	return Model{
		title:        title,
		content:      content,
		warnings:     warnings,
		showWarnings: len(warnings) > 0,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		logger:       logging.GetPreviewLogger(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Ready reports whether the first window size has arrived.
func (m Model) Ready() bool { return m.ready }

// ScrollPercent reports the vertical scroll position between 0 and 1.
func (m Model) ScrollPercent() float64 {
	if !m.ready {
		return 0
	}
	return m.viewport.ScrollPercent()
}

// Run shows content in the alternate screen until the user quits.
func Run(content, title string, warnings []string) error {
	logger := logging.GetPreviewLogger()
	return logger.LogOperation("preview", func() error {
		p := tea.NewProgram(New(content, title, warnings), tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	})
}
