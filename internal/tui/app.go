// Package tui renders stored workout sessions in a terminal UI.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fittrack/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenSessions Screen = iota
	ScreenStats
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	sessions SessionsModel
	stats    StatsModel
	help     HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(svc *service.Processor, chartHeight int) *App {
	return &App{
		screen:   ScreenSessions,
		sessions: NewSessionsModel(svc),
		stats:    NewStatsModel(svc, chartHeight),
		help:     NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.sessions.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenSessions
			return a, a.sessions.Init()
		case "2":
			a.screen = ScreenStats
			return a, a.stats.Init()
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenSessions:
		var m tea.Model
		m, cmd = a.sessions.Update(msg)
		a.sessions = m.(SessionsModel)
	case ScreenStats:
		var m tea.Model
		m, cmd = a.stats.Update(msg)
		a.stats = m.(StatsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("fittrack")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenSessions:
		content = a.sessions.View()
	case ScreenStats:
		content = a.stats.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := footerStyle.Render("1 sessions · 2 stats · ? help · q quit")

	return strings.Join([]string{header, nav, content, footer}, "\n")
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenSessions, "[1] Sessions"},
		{ScreenStats, "[2] Stats"},
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if a.screen == item.screen {
			parts = append(parts, navActiveStyle.Render(item.label))
		} else {
			parts = append(parts, navInactiveStyle.Render(item.label))
		}
	}
	return navStyle.Render(strings.Join(parts, "  "))
}
