package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HelpModel is the static help screen
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init does nothing; the help screen is static
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the keybinding reference
func (m HelpModel) View() string {
	bindings := []struct {
		key, desc string
	}{
		{"1", "session list"},
		{"2", "aggregate stats"},
		{"up/k, down/j", "move selection"},
		{"r", "reload current screen"},
		{"?", "this help"},
		{"esc", "back"},
		{"q, ctrl+c", "quit"},
	}

	lines := []string{cardTitleStyle.Render("Keybindings")}
	for _, b := range bindings {
		lines = append(lines, metricLabelStyle.Render(b.key)+metricValueStyle.Render(b.desc))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
