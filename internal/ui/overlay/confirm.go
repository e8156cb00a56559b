package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks the user to confirm a destructive action.
// On confirmation it emits a SelectionMsg carrying the action key
// and value it was constructed with.
type ConfirmDialog struct {
	title   string
	message string
	key     string
	value   any
	styles  *Styles
}

// NewConfirmDialog creates a confirmation dialog
func NewConfirmDialog(title, message, key string, value any) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		key:     key,
		value:   value,
		styles:  New(),
	}
}

// Init initializes the overlay
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y", "enter":
			key, value := c.key, c.value
			return c, tea.Batch(
				func() tea.Msg { return SelectionMsg{Key: key, Value: value} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		case "n", "N", "esc", "q":
			return c, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.styles.MenuItem.Render(c.message))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("y") + " " + c.styles.Footer.Render("Confirm"),
		c.styles.MenuKey.Render("n") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the overlay dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	w := len(c.message) + 8
	if w < 40 {
		w = 40
	}
	if w > 70 {
		w = 70
	}
	return w, 7
}
