package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elenalowe/tasktide/internal/store"
)

// StatsOverlay displays aggregate task and session statistics
type StatsOverlay struct {
	stats    store.Stats
	sessions int
	styles   *Styles
}

// NewStatsOverlay creates a stats overlay from a store snapshot
func NewStatsOverlay(stats store.Stats, sessions int) *StatsOverlay {
	return &StatsOverlay{
		stats:    stats,
		sessions: sessions,
		styles:   New(),
	}
}

// Init initializes the overlay
func (s *StatsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *StatsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "t":
			return s, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return s, nil
}

// View renders the statistics
func (s *StatsOverlay) View() string {
	var b strings.Builder

	rows := []struct {
		label string
		value string
	}{
		{"Total tasks", fmt.Sprintf("%d", s.stats.Total)},
		{"Completed", fmt.Sprintf("%d", s.stats.Completed)},
		{"Overdue", fmt.Sprintf("%d", s.stats.Overdue)},
		{"Created today", fmt.Sprintf("%d", s.stats.CreatedToday)},
		{"Focus sessions", fmt.Sprintf("%d", s.sessions)},
		{"Focus time", formatMinutes(s.stats.TotalMinutes)},
	}

	for _, row := range rows {
		b.WriteString(s.styles.MenuItem.Render(padRight(row.label, 16)))
		b.WriteString(s.styles.MenuCount.Render(row.value))
		b.WriteString("\n")
	}

	if s.stats.Total > 0 {
		pct := s.stats.Completed * 100 / s.stats.Total
		b.WriteString("\n")
		b.WriteString(s.styles.MenuHeader.Render(fmt.Sprintf("Completion rate: %d%%", pct)))
		b.WriteString("\n")
		b.WriteString(s.styles.MenuCount.Render(renderBar(pct, 30)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.styles.Footer.Render("Press Esc to close"))

	return b.String()
}

// renderBar renders a simple progress bar of the given width
func renderBar(pct, width int) string {
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// formatMinutes renders a minute total as "3h 25m" or "25m"
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Title returns the overlay title
func (s *StatsOverlay) Title() string {
	return "Statistics"
}

// Size returns the overlay dimensions
func (s *StatsOverlay) Size() (width, height int) {
	return 44, 16
}
