package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elenalowe/tasktide/internal/domain"
)

// Messages emitted by the detail overlay. The app applies the
// mutation to the store and refreshes the overlay's task copy.
type (
	// ToggleSubtaskMsg requests toggling a subtask's completion
	ToggleSubtaskMsg struct {
		TaskID    int
		SubtaskID int
	}

	// AddSubtaskMsg requests adding a subtask to a task
	AddSubtaskMsg struct {
		TaskID int
		Title  string
	}

	// RemoveSubtaskMsg requests removing a subtask from a task
	RemoveSubtaskMsg struct {
		TaskID    int
		SubtaskID int
	}

	// StartTimerMsg requests starting a focus session on a task
	StartTimerMsg struct {
		TaskID int
	}
)

// TaskDetailOverlay shows a task's full details with subtask management
type TaskDetailOverlay struct {
	task   domain.Task
	cursor int
	adding bool
	input  textinput.Model
	now    func() time.Time
	styles *Styles
}

// NewTaskDetailOverlay creates a detail overlay for a task
func NewTaskDetailOverlay(task domain.Task) *TaskDetailOverlay {
	ti := textinput.New()
	ti.Placeholder = "Subtask title..."
	ti.CharLimit = 200
	ti.Width = 40

	return &TaskDetailOverlay{
		task:   task,
		input:  ti,
		now:    time.Now,
		styles: New(),
	}
}

// SetTask replaces the displayed task after a store mutation
func (d *TaskDetailOverlay) SetTask(task domain.Task) {
	d.task = task
	if d.cursor >= len(task.Subtasks) {
		d.cursor = len(task.Subtasks) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// Init initializes the overlay
func (d *TaskDetailOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *TaskDetailOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	if d.adding {
		switch keyMsg.String() {
		case "enter":
			title := strings.TrimSpace(d.input.Value())
			d.adding = false
			d.input.SetValue("")
			d.input.Blur()
			if title == "" {
				return d, nil
			}
			taskID := d.task.ID
			return d, func() tea.Msg { return AddSubtaskMsg{TaskID: taskID, Title: title} }
		case "esc":
			d.adding = false
			d.input.SetValue("")
			d.input.Blur()
			return d, nil
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	switch keyMsg.String() {
	case "esc", "q":
		return d, func() tea.Msg { return CloseOverlayMsg{} }

	case "j", "down":
		if d.cursor < len(d.task.Subtasks)-1 {
			d.cursor++
		}
		return d, nil

	case "k", "up":
		if d.cursor > 0 {
			d.cursor--
		}
		return d, nil

	case " ", "enter":
		if len(d.task.Subtasks) == 0 {
			return d, nil
		}
		taskID := d.task.ID
		subID := d.task.Subtasks[d.cursor].ID
		return d, func() tea.Msg { return ToggleSubtaskMsg{TaskID: taskID, SubtaskID: subID} }

	case "a":
		d.adding = true
		return d, d.input.Focus()

	case "x", "delete":
		if len(d.task.Subtasks) == 0 {
			return d, nil
		}
		taskID := d.task.ID
		subID := d.task.Subtasks[d.cursor].ID
		return d, func() tea.Msg { return RemoveSubtaskMsg{TaskID: taskID, SubtaskID: subID} }

	case "s":
		taskID := d.task.ID
		return d, tea.Batch(
			func() tea.Msg { return StartTimerMsg{TaskID: taskID} },
			func() tea.Msg { return CloseOverlayMsg{} },
		)
	}

	return d, nil
}

// View renders the task details
func (d *TaskDetailOverlay) View() string {
	var b strings.Builder
	t := d.task

	status := "Active"
	if t.Completed {
		status = "Completed"
	} else if t.IsOverdue(d.now()) {
		status = "Overdue"
	}

	b.WriteString(d.styles.MenuHeader.Render(fmt.Sprintf("%s • %s • %s", t.Category, t.Priority, status)))
	b.WriteString("\n\n")

	if t.Description != "" {
		b.WriteString(d.styles.MenuItem.Render(t.Description))
		b.WriteString("\n\n")
	}

	if t.DueDate != nil {
		b.WriteString(d.styles.Footer.Render("Due: " + t.DueDate.Format("Mon, Jan 2 2006")))
		b.WriteString("\n")
	}
	if t.EstimatedTime > 0 || t.TimeSpent > 0 {
		b.WriteString(d.styles.Footer.Render(fmt.Sprintf("Time: %dm spent / %dm estimated", t.TimeSpent, t.EstimatedTime)))
		b.WriteString("\n")
	}
	if len(t.Tags) > 0 {
		b.WriteString(d.styles.Footer.Render("Tags: " + strings.Join(t.Tags, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(d.styles.MenuHeader.Render(fmt.Sprintf("Subtasks (%d%%)", t.Progress())))
	b.WriteString("\n")
	if len(t.Subtasks) == 0 {
		b.WriteString(d.styles.MenuItemDisabled.Render("  No subtasks"))
		b.WriteString("\n")
	}
	for i, st := range t.Subtasks {
		check := "[ ]"
		style := d.styles.MenuItem
		if st.Completed {
			check = "[✓]"
			style = d.styles.MenuItemDisabled
		}
		line := fmt.Sprintf("  %s %s", check, st.Title)
		if i == d.cursor {
			style = d.styles.MenuItemActive
			line = "▸" + line[1:]
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if d.adding {
		b.WriteString("\n")
		b.WriteString(d.styles.LabelFocused.Render("New:"))
		b.WriteString(" " + d.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := []string{
		d.styles.MenuKey.Render("Space") + " " + d.styles.Footer.Render("Toggle"),
		d.styles.MenuKey.Render("a") + " " + d.styles.Footer.Render("Add"),
		d.styles.MenuKey.Render("x") + " " + d.styles.Footer.Render("Remove"),
		d.styles.MenuKey.Render("s") + " " + d.styles.Footer.Render("Focus"),
		d.styles.MenuKey.Render("Esc") + " " + d.styles.Footer.Render("Close"),
	}
	b.WriteString(d.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (d *TaskDetailOverlay) Title() string {
	return d.task.Title
}

// Size returns the overlay dimensions
func (d *TaskDetailOverlay) Size() (width, height int) {
	height = 16 + len(d.task.Subtasks)
	if height > 30 {
		height = 30
	}
	return 64, height
}
