package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elenalowe/tasktide/internal/domain"
)

// SuggestionPickedMsg is emitted when a suggested task is chosen
type SuggestionPickedMsg struct {
	Suggestion domain.Suggestion
}

// SuggestionsOverlay lets the user pick from a list of canned task
// templates
type SuggestionsOverlay struct {
	suggestions []domain.Suggestion
	cursor      int
	styles      *Styles
}

// NewSuggestionsOverlay creates a suggestion picker
func NewSuggestionsOverlay(suggestions []domain.Suggestion) *SuggestionsOverlay {
	return &SuggestionsOverlay{
		suggestions: suggestions,
		styles:      New(),
	}
}

// Init initializes the overlay
func (s *SuggestionsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *SuggestionsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return CloseOverlayMsg{} }

	case "j", "down":
		if s.cursor < len(s.suggestions)-1 {
			s.cursor++
		}

	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}

	case "enter", " ":
		if len(s.suggestions) == 0 {
			return s, nil
		}
		picked := s.suggestions[s.cursor]
		return s, tea.Batch(
			func() tea.Msg { return SuggestionPickedMsg{Suggestion: picked} },
			func() tea.Msg { return CloseOverlayMsg{} },
		)
	}

	return s, nil
}

// View renders the suggestion list
func (s *SuggestionsOverlay) View() string {
	var b strings.Builder

	for i, sg := range s.suggestions {
		style := s.styles.MenuItem
		prefix := "  "
		if i == s.cursor {
			style = s.styles.MenuItemActive
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + sg.Title))
		b.WriteString("  ")
		b.WriteString(s.styles.Footer.Render("(" + sg.Category + ", " + sg.Priority.String() + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := []string{
		s.styles.MenuKey.Render("Enter") + " " + s.styles.Footer.Render("Add task"),
		s.styles.MenuKey.Render("Esc") + " " + s.styles.Footer.Render("Cancel"),
	}
	b.WriteString(s.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (s *SuggestionsOverlay) Title() string {
	return "Suggested Tasks"
}

// Size returns the overlay dimensions
func (s *SuggestionsOverlay) Size() (width, height int) {
	return 56, len(s.suggestions) + 8
}
