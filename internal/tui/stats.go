package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fittrack/internal/service"
	"fittrack/internal/store"
)

const statsChartSessions = 30

// StatsModel is the aggregate stats screen model
type StatsModel struct {
	svc         *service.Processor
	chartHeight int

	totals   []store.KindTotals
	calories []float64 // per session, oldest first

	loading bool
	err     error
	width   int
}

// NewStatsModel creates a new stats model
func NewStatsModel(svc *service.Processor, chartHeight int) StatsModel {
	return StatsModel{
		svc:         svc,
		chartHeight: chartHeight,
		loading:     true,
	}
}

// Init initializes the stats screen
func (m StatsModel) Init() tea.Cmd {
	return m.load
}

type statsLoadedMsg struct {
	totals   []store.KindTotals
	calories []float64
	err      error
}

func (m StatsModel) load() tea.Msg {
	totals, err := m.svc.Totals()
	if err != nil {
		return statsLoadedMsg{err: err}
	}

	sessions, err := m.svc.RecentSessions(statsChartSessions)
	if err != nil {
		return statsLoadedMsg{err: err}
	}

	// RecentSessions is newest first; the chart reads oldest first
	calories := make([]float64, len(sessions))
	for i, sess := range sessions {
		calories[len(sessions)-1-i] = sess.CaloriesKcal
	}

	return statsLoadedMsg{totals: totals, calories: calories}
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.totals = msg.totals
		m.calories = msg.calories

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.load
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders totals per kind and a calorie chart
func (m StatsModel) View() string {
	if m.loading {
		return "\n  Loading stats..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.totals) == 0 {
		return "\n  No sessions yet."
	}

	cards := make([]string, 0, len(m.totals))
	for _, t := range m.totals {
		body := strings.Join([]string{
			cardTitleStyle.Render(t.Kind),
			metricLabelStyle.Render("Sessions") + metricValueStyle.Render(fmt.Sprintf("%d", t.Sessions)),
			metricLabelStyle.Render("Distance") + metricValueStyle.Render(fmt.Sprintf("%.3f km", t.DistanceKm)),
			metricLabelStyle.Render("Calories") + metricValueStyle.Render(fmt.Sprintf("%.3f kcal", t.CaloriesKcal)),
		}, "\n")
		cards = append(cards, cardStyle.Render(body))
	}
	totalsRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	sections := []string{totalsRow}
	if len(m.calories) > 1 {
		chart := asciigraph.Plot(m.calories,
			asciigraph.Height(m.chartHeight),
			asciigraph.Width(60),
			asciigraph.Precision(1),
			asciigraph.Caption("kcal per session (oldest to newest)"),
		)
		sections = append(sections, cardStyle.Render(cardTitleStyle.Render("Calories")+"\n"+chart))
	}

	return strings.Join(sections, "\n")
}
