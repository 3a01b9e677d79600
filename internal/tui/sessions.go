package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/service"
	"fittrack/internal/store"
)

const sessionsPageLimit = 200

// SessionsModel is the session list screen model
type SessionsModel struct {
	svc      *service.Processor
	sessions []store.Session
	cursor   int

	detail  viewport.Model
	vpReady bool

	loading bool
	err     error

	width  int
	height int
}

// NewSessionsModel creates a new sessions model
func NewSessionsModel(svc *service.Processor) SessionsModel {
	return SessionsModel{
		svc:     svc,
		loading: true,
	}
}

// Init initializes the sessions screen
func (m SessionsModel) Init() tea.Cmd {
	return m.load
}

type sessionsLoadedMsg struct {
	sessions []store.Session
	err      error
}

func (m SessionsModel) load() tea.Msg {
	sessions, err := m.svc.RecentSessions(sessionsPageLimit)
	return sessionsLoadedMsg{sessions: sessions, err: err}
}

// Update handles messages
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.sessions = msg.sessions
		if m.cursor >= len(m.sessions) {
			m.cursor = 0
		}
		m.refreshDetail()

	case tea.KeyMsg:
		// List navigation consumes these keys; pgup/pgdown fall
		// through to the detail viewport below.
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.sessions)-1 {
				m.cursor++
				m.refreshDetail()
			}
			return m, nil
		case "r":
			m.loading = true
			return m, m.load
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		detailWidth := m.width/2 - 4
		if detailWidth < 30 {
			detailWidth = 30
		}
		detailHeight := m.height - 10
		if detailHeight < 8 {
			detailHeight = 8
		}
		if !m.vpReady {
			m.detail = viewport.New(detailWidth, detailHeight)
			m.vpReady = true
		} else {
			m.detail.Width = detailWidth
			m.detail.Height = detailHeight
		}
		m.refreshDetail()
	}

	// Let the viewport handle scrolling keys
	var cmd tea.Cmd
	if m.vpReady {
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m *SessionsModel) refreshDetail() {
	if !m.vpReady || len(m.sessions) == 0 || m.cursor >= len(m.sessions) {
		return
	}
	m.detail.SetContent(renderSessionDetail(m.sessions[m.cursor]))
}

// View renders the session list with a detail pane
func (m SessionsModel) View() string {
	if m.loading {
		return "\n  Loading sessions..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.sessions) == 0 {
		return "\n  No sessions yet. Point feed.path at a packet feed and restart."
	}

	var rows []string
	rows = append(rows, cardTitleStyle.Render(fmt.Sprintf("Sessions (%d)", len(m.sessions))))
	for i, sess := range m.sessions {
		line := fmt.Sprintf("%-10s  %-13s  %7.3f km  %9.3f kcal",
			sess.CreatedAt.Format("2006-01-02"), sess.Kind, sess.DistanceKm, sess.CaloriesKcal)
		if i == m.cursor {
			rows = append(rows, rowSelectedStyle.Render("> "+line))
		} else {
			rows = append(rows, rowStyle.Render("  "+line))
		}
	}
	list := strings.Join(rows, "\n")

	if !m.vpReady {
		return list
	}

	detail := cardStyle.Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
}

func renderSessionDetail(sess store.Session) string {
	metric := func(label, value string) string {
		return metricLabelStyle.Render(label) + metricValueStyle.Render(value)
	}

	lines := []string{
		cardTitleStyle.Render(sess.Kind),
		metric("Date", sess.CreatedAt.Format("2006-01-02 15:04")),
		metric("Duration", fmt.Sprintf("%.3f h", sess.DurationHours)),
		metric("Distance", fmt.Sprintf("%.3f km", sess.DistanceKm)),
		metric("Mean speed", fmt.Sprintf("%.3f km/h", sess.MeanSpeedKmH)),
		metric("Calories", fmt.Sprintf("%.3f kcal", sess.CaloriesKcal)),
		metric("Action", fmt.Sprintf("%.0f", sess.Action)),
		metric("Weight", fmt.Sprintf("%.1f kg", sess.WeightKg)),
	}

	if sess.HeightCm != nil {
		lines = append(lines, metric("Height", fmt.Sprintf("%.0f cm", *sess.HeightCm)))
	}
	if sess.PoolLengthM != nil {
		lines = append(lines, metric("Pool length", fmt.Sprintf("%.0f m", *sess.PoolLengthM)))
	}
	if sess.LapCount != nil {
		lines = append(lines, metric("Laps", fmt.Sprintf("%.0f", *sess.LapCount)))
	}

	lines = append(lines, "", sess.Message)
	return strings.Join(lines, "\n")
}
