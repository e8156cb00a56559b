package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/ui/styles"
)

// renderColumn renders a category column with header and task cards
func renderColumn(
	title string,
	tasks []domain.Task,
	cursorTask int,
	isActive bool,
	now time.Time,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title and count (e.g., "─ work (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", title, len(tasks))
	remainingWidth := width - len(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	var cardStrings []string
	cardWidth := width - 4 // Account for column border and padding
	for i, task := range tasks {
		isCursor := isActive && i == cursorTask
		cardStrings = append(cardStrings, renderCard(task, isCursor, now, cardWidth, s))
	}

	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	columnStyle := s.Column.Width(width).Height(height)
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
