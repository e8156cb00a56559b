package compact

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/domain"
)

// CompactView is a scrollable list view of tasks, an alternative to the
// category board
type CompactView struct {
	tasks  []domain.Task
	cursor int
	now    func() time.Time
	styles *Styles
	width  int
	height int

	// Scrolling state
	scrollOffset int
}

// NewCompactView creates a new CompactView with the given tasks and dimensions
func NewCompactView(tasks []domain.Task, width, height int) *CompactView {
	return &CompactView{
		tasks:  tasks,
		now:    time.Now,
		styles: NewStyles(),
		width:  width,
		height: height,
	}
}

// SetTasks updates the task list
func (cv *CompactView) SetTasks(tasks []domain.Task) {
	cv.tasks = tasks
	if cv.cursor >= len(cv.tasks) {
		cv.cursor = max(0, len(cv.tasks)-1)
	}
}

// SetCursor sets the cursor position
func (cv *CompactView) SetCursor(index int) {
	if index < 0 {
		cv.cursor = 0
	} else if index >= len(cv.tasks) {
		cv.cursor = max(0, len(cv.tasks)-1)
	} else {
		cv.cursor = index
	}
	cv.ensureCursorVisible()
}

// GetCursor returns the current cursor position
func (cv *CompactView) GetCursor() int {
	return cv.cursor
}

// MoveUp moves cursor up by n positions
func (cv *CompactView) MoveUp(n int) {
	cv.SetCursor(cv.cursor - n)
}

// MoveDown moves cursor down by n positions
func (cv *CompactView) MoveDown(n int) {
	cv.SetCursor(cv.cursor + n)
}

// GotoTop moves cursor to the first task
func (cv *CompactView) GotoTop() {
	cv.SetCursor(0)
}

// GotoBottom moves cursor to the last task
func (cv *CompactView) GotoBottom() {
	cv.SetCursor(len(cv.tasks) - 1)
}

// GetCurrentTask returns the task at the cursor position
func (cv *CompactView) GetCurrentTask() *domain.Task {
	if cv.cursor >= 0 && cv.cursor < len(cv.tasks) {
		return &cv.tasks[cv.cursor]
	}
	return nil
}

// SetDimensions updates the view dimensions
func (cv *CompactView) SetDimensions(width, height int) {
	cv.width = width
	cv.height = height
	cv.ensureCursorVisible()
}

// Render renders the full compact view
func (cv *CompactView) Render() string {
	if len(cv.tasks) == 0 {
		return cv.renderEmptyState()
	}

	var b strings.Builder

	b.WriteString(cv.renderHeader())
	b.WriteString("\n")
	b.WriteString(cv.renderSeparator())
	b.WriteString("\n")

	visibleRows := cv.calculateVisibleRows()
	startIdx := cv.scrollOffset
	endIdx := min(startIdx+visibleRows, len(cv.tasks))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(cv.renderRow(i, cv.tasks[i]))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(cv.tasks) {
		b.WriteString("\n")
		scrollInfo := cv.styles.Separator.Render(
			fmt.Sprintf(" ↓ %d more tasks ↓ ", len(cv.tasks)-endIdx),
		)
		b.WriteString(scrollInfo)
	}

	return b.String()
}

// renderEmptyState renders the empty state
func (cv *CompactView) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(cv.styles.Row.GetForeground()).
		Italic(true).
		Align(lipgloss.Center).
		Width(cv.width).
		Height(cv.height / 2)

	return emptyStyle.Render("No tasks to display\n\nPress 'n' to create a task or '/' to search")
}

// renderHeader renders the table header
func (cv *CompactView) renderHeader() string {
	widths := cv.calculateColumnWidths()

	cells := []string{
		cv.styles.HeaderCell.Width(widths.number).Render("#"),
		cv.styles.HeaderCell.Width(widths.title).Render("Title"),
		cv.styles.HeaderCell.Width(widths.category).Render("Category"),
		cv.styles.HeaderCell.Width(widths.priority).Render("Pri"),
		cv.styles.HeaderCell.Width(widths.due).Render("Due"),
		cv.styles.HeaderCell.Width(widths.progress).Render("Prog"),
		cv.styles.HeaderCell.Width(widths.status).Render("Status"),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderSeparator renders the separator line
func (cv *CompactView) renderSeparator() string {
	return cv.styles.Separator.Render(strings.Repeat("─", cv.width))
}

// renderRow renders a single task row
func (cv *CompactView) renderRow(index int, task domain.Task) string {
	isActive := index == cv.cursor

	rowStyle := cv.styles.Row
	if isActive {
		rowStyle = cv.styles.RowActive
	} else if task.Completed {
		rowStyle = cv.styles.RowDone
	}

	widths := cv.calculateColumnWidths()

	cells := []string{
		cv.renderNumberCell(index, isActive, rowStyle, widths.number),
		cv.renderTitleCell(task.Title, rowStyle, widths.title),
		rowStyle.Width(widths.category).Align(lipgloss.Center).Render(task.Category),
		cv.renderPriorityCell(task.Priority, widths.priority),
		cv.renderDueCell(task, widths.due),
		cv.renderProgressCell(task, widths.progress),
		cv.renderStatusCell(task, widths.status),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderNumberCell renders the row number with the cursor indicator
func (cv *CompactView) renderNumberCell(index int, isActive bool, rowStyle lipgloss.Style, width int) string {
	indicator := "  "
	if isActive {
		indicator = cv.styles.Cursor.Render("▶ ")
	}

	number := fmt.Sprintf("%2d", index+1)
	return rowStyle.Width(width).Render(indicator + number)
}

// renderTitleCell renders the task title with truncation
func (cv *CompactView) renderTitleCell(title string, rowStyle lipgloss.Style, width int) string {
	return rowStyle.Width(width).Render(truncateString(title, width))
}

// renderPriorityCell renders the priority with color
func (cv *CompactView) renderPriorityCell(priority domain.Priority, width int) string {
	var style lipgloss.Style
	switch priority {
	case domain.PriorityHigh:
		style = cv.styles.PriorityHigh
	case domain.PriorityMedium:
		style = cv.styles.PriorityMedium
	default:
		style = cv.styles.PriorityLow
	}
	return style.Width(width).Align(lipgloss.Center).Render(priority.Short())
}

// renderDueCell renders the due date, highlighted when overdue
func (cv *CompactView) renderDueCell(task domain.Task, width int) string {
	if task.DueDate == nil {
		return cv.styles.ColDue.Width(width).Render("-")
	}
	style := cv.styles.ColDue
	if task.IsOverdue(cv.now()) {
		style = cv.styles.StatusOverdue
	}
	return style.Width(width).Align(lipgloss.Center).Render(task.DueDate.Format("Jan 02"))
}

// renderProgressCell renders subtask progress
func (cv *CompactView) renderProgressCell(task domain.Task, width int) string {
	if len(task.Subtasks) == 0 {
		return cv.styles.ColDue.Width(width).Render("-")
	}
	return cv.styles.ColDue.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("%d%%", task.Progress()))
}

// renderStatusCell renders the status abbreviation with color
func (cv *CompactView) renderStatusCell(task domain.Task, width int) string {
	abbrev := "open"
	style := cv.styles.StatusActive
	if task.Completed {
		abbrev = "done"
		style = cv.styles.StatusDone
	} else if task.IsOverdue(cv.now()) {
		abbrev = "late"
		style = cv.styles.StatusOverdue
	}
	return style.Width(width).Align(lipgloss.Center).Render(abbrev)
}

// columnWidths holds the calculated column widths
type columnWidths struct {
	number   int
	title    int
	category int
	priority int
	due      int
	progress int
	status   int
}

// calculateColumnWidths calculates responsive column widths
func (cv *CompactView) calculateColumnWidths() columnWidths {
	const (
		numberWidth   = 5
		categoryWidth = 10
		priorityWidth = 4
		dueWidth      = 8
		progressWidth = 6
		statusWidth   = 7
	)

	fixedWidth := numberWidth + categoryWidth + priorityWidth + dueWidth + progressWidth + statusWidth
	titleWidth := max(20, cv.width-fixedWidth)

	return columnWidths{
		number:   numberWidth,
		title:    titleWidth,
		category: categoryWidth,
		priority: priorityWidth,
		due:      dueWidth,
		progress: progressWidth,
		status:   statusWidth,
	}
}

// calculateVisibleRows calculates how many rows fit in the visible area
func (cv *CompactView) calculateVisibleRows() int {
	// Account for header and separator
	availableHeight := cv.height - 2
	if availableHeight < 1 {
		return 1
	}
	return availableHeight
}

// ensureCursorVisible adjusts scroll offset to keep the cursor visible
func (cv *CompactView) ensureCursorVisible() {
	visibleRows := cv.calculateVisibleRows()

	if cv.cursor < cv.scrollOffset {
		cv.scrollOffset = cv.cursor
	}
	if cv.cursor >= cv.scrollOffset+visibleRows {
		cv.scrollOffset = cv.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(cv.tasks)-visibleRows)
	if cv.scrollOffset > maxOffset {
		cv.scrollOffset = maxOffset
	}
	if cv.scrollOffset < 0 {
		cv.scrollOffset = 0
	}
}

// truncateString truncates a string to fit within the given width.
// If truncated, adds "..." at the end.
func truncateString(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", min(width, 3))
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
