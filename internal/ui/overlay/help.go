package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HelpOverlay displays keyboard shortcuts
type HelpOverlay struct {
	styles *Styles
}

// NewHelpOverlay creates a help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return h, nil
}

type helpSection struct {
	title    string
	bindings [][2]string
}

var helpSections = []helpSection{
	{
		title: "Navigation",
		bindings: [][2]string{
			{"h/l, ←/→", "Move between columns"},
			{"j/k, ↓/↑", "Move between tasks"},
			{"Enter", "Open task details"},
			{"g g/e", "Jump to top / bottom"},
			{"v", "Toggle board / compact view"},
		},
	},
	{
		title: "Tasks",
		bindings: [][2]string{
			{"n", "New task"},
			{"e", "Edit task"},
			{"Space", "Toggle completion"},
			{"d", "Delete task"},
			{"u", "Pick a suggested task"},
			{"X", "Clear all tasks"},
		},
	},
	{
		title: "Focus Timer",
		bindings: [][2]string{
			{"s", "Start session on task"},
			{"p", "Pause / resume session"},
			{"S", "Stop session"},
		},
	},
	{
		title: "Filter & Sort",
		bindings: [][2]string{
			{"f", "Cycle filter scope"},
			{"/", "Search tasks"},
			{"1-4", "Sort by created/due/priority/status"},
			{"c", "Clear filters"},
		},
	},
	{
		title: "Other",
		bindings: [][2]string{
			{"t", "Show statistics"},
			{"?", "This help"},
			{"q", "Quit"},
		},
	},
}

// View renders the help content
func (h *HelpOverlay) View() string {
	var b strings.Builder

	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h.styles.MenuHeader.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			key := h.styles.MenuKey.Render(padRight(binding[0], 12))
			b.WriteString("  " + key + " " + h.styles.MenuItem.Render(binding[1]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(h.styles.Footer.Render("Press Esc to close"))

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keyboard Shortcuts"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 52, 32
}
