package compact

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/ui/styles"
)

// Styles holds the styling for the compact list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style
	RowDone   lipgloss.Style

	// Column styles
	ColNumber lipgloss.Style
	ColTitle  lipgloss.Style
	ColDue    lipgloss.Style

	// Status abbreviations
	StatusActive  lipgloss.Style
	StatusDone    lipgloss.Style
	StatusOverdue lipgloss.Style

	// Priority colors
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		RowDone: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Strikethrough(true),

		ColNumber: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Width(5).
			Align(lipgloss.Right),

		ColTitle: lipgloss.NewStyle().
			Foreground(styles.Text).
			Align(lipgloss.Left),

		ColDue: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Align(lipgloss.Center),

		StatusActive: lipgloss.NewStyle().
			Foreground(styles.Blue),

		StatusDone: lipgloss.NewStyle().
			Foreground(styles.Green),

		StatusOverdue: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		PriorityLow: lipgloss.NewStyle().
			Foreground(styles.Green),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),
	}
}
