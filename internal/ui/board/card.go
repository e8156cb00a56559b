package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	} else if task.Completed {
		cardStyle = s.CardCompleted
	}
	cardStyle = cardStyle.Width(width)

	// Title - truncate if needed.
	// Account for padding (2), border (2), and the cursor marker.
	maxTitleLen := width - 4
	title := task.Title
	if len(title) > maxTitleLen && maxTitleLen > 1 {
		title = title[:maxTitleLen-1] + "…"
	}

	titleStyle := s.TaskTitle
	if task.Completed {
		titleStyle = s.TaskTitleDone
	}
	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	titleLine := cursor + titleStyle.Render(title)

	priorityBadge := s.PriorityBadge(task.Priority).Render(task.Priority.Short())
	badgeLine := priorityBadge

	if task.DueDate != nil {
		dueStyle := s.TaskMeta
		if task.IsOverdue(now) {
			dueStyle = s.TaskOverdue
		}
		badgeLine = lipgloss.JoinHorizontal(lipgloss.Left,
			badgeLine, " ", dueStyle.Render(task.DueDate.Format("Jan 2")))
	}

	if len(task.Subtasks) > 0 {
		badgeLine = lipgloss.JoinHorizontal(lipgloss.Left,
			badgeLine, " ", s.Progress.Render(fmt.Sprintf("%d%%", task.Progress())))
	}

	lines := []string{titleLine, badgeLine}

	if len(task.Tags) > 0 {
		lines = append(lines, s.TaskMeta.Render("#"+strings.Join(task.Tags, " #")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, now, width, s)
}
