package board

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/ui/styles"
)

// Render renders the board with one column per category
func Render(
	columns []Column,
	cursor Cursor,
	now time.Time,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	// Columns evenly distributed across the terminal
	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(
			col.Title,
			col.Tasks,
			cursorTask,
			isActive,
			now,
			columnWidth,
			height,
			s,
		)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
