package overlay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/store"
)

// TaskSubmittedMsg is emitted when the form is submitted.
// TaskID is zero for a new task and the edited task's id otherwise.
type TaskSubmittedMsg struct {
	TaskID int
	Draft  store.Draft
}

// TaskFormOverlay provides a form to create or edit a task
type TaskFormOverlay struct {
	taskID     int
	title      textinput.Model
	desc       textarea.Model
	dueDate    textinput.Model
	estimate   textinput.Model
	tags       textinput.Model
	categories []string
	category   int
	priority   domain.Priority
	focusIndex int
	errText    string
	styles     *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusCategory
	focusPriority
	focusDueDate
	focusEstimate
	focusTags
	focusSubmit
	formFieldCount
)

// NewTaskFormOverlay creates an empty form for a new task
func NewTaskFormOverlay(categories []string, defaultCategory string) *TaskFormOverlay {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Description (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(50)
	ta.SetHeight(3)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10
	due.Width = 24

	est := textinput.New()
	est.Placeholder = "minutes (optional)"
	est.CharLimit = 4
	est.Width = 24

	tags := textinput.New()
	tags.Placeholder = "comma, separated, tags"
	tags.CharLimit = 200
	tags.Width = 50

	category := 0
	for i, c := range categories {
		if c == defaultCategory {
			category = i
			break
		}
	}

	return &TaskFormOverlay{
		title:      ti,
		desc:       ta,
		dueDate:    due,
		estimate:   est,
		tags:       tags,
		categories: categories,
		category:   category,
		priority:   domain.PriorityMedium,
		focusIndex: focusTitle,
		styles:     New(),
	}
}

// NewEditTaskOverlay creates a form pre-filled from an existing task
func NewEditTaskOverlay(task domain.Task, categories []string) *TaskFormOverlay {
	f := NewTaskFormOverlay(categories, task.Category)
	f.taskID = task.ID
	f.title.SetValue(task.Title)
	f.desc.SetValue(task.Description)
	f.priority = task.Priority
	if task.DueDate != nil {
		f.dueDate.SetValue(task.DueDate.Format("2006-01-02"))
	}
	if task.EstimatedTime > 0 {
		f.estimate.SetValue(strconv.Itoa(task.EstimatedTime))
	}
	f.tags.SetValue(strings.Join(task.Tags, ", "))
	return f
}

// Init initializes the overlay
func (f *TaskFormOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskFormOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % formFieldCount
			} else {
				f.focusIndex = (f.focusIndex - 1 + formFieldCount) % formFieldCount
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
			// Let the active field handle enter
		}

		// Cycle category when focused
		if f.focusIndex == focusCategory {
			switch msg.String() {
			case "left", "h":
				f.category = (f.category - 1 + len(f.categories)) % len(f.categories)
				return f, nil
			case "right", "l", " ":
				f.category = (f.category + 1) % len(f.categories)
				return f, nil
			}
		}

		// Priority selection when focused
		if f.focusIndex == focusPriority {
			switch msg.String() {
			case "L":
				f.priority = domain.PriorityLow
				return f, nil
			case "M":
				f.priority = domain.PriorityMedium
				return f, nil
			case "H":
				f.priority = domain.PriorityHigh
				return f, nil
			case "left", "h":
				if f.priority > domain.PriorityLow {
					f.priority--
				}
				return f, nil
			case "right", "l", " ":
				if f.priority < domain.PriorityHigh {
					f.priority++
				}
				return f, nil
			}
		}
	}

	// Update the active field
	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.desc, cmd = f.desc.Update(msg)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	case focusEstimate:
		f.estimate, cmd = f.estimate.Update(msg)
	case focusTags:
		f.tags, cmd = f.tags.Update(msg)
	}
	cmds = append(cmds, cmd)

	return f, tea.Batch(cmds...)
}

// syncFocus moves textinput focus to the active field
func (f *TaskFormOverlay) syncFocus() {
	f.title.Blur()
	f.desc.Blur()
	f.dueDate.Blur()
	f.estimate.Blur()
	f.tags.Blur()

	switch f.focusIndex {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.desc.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	case focusEstimate:
		f.estimate.Focus()
	case focusTags:
		f.tags.Focus()
	}
}

// View renders the form
func (f *TaskFormOverlay) View() string {
	var b strings.Builder

	b.WriteString(f.renderField(focusTitle, "Title:", f.title.View()))
	b.WriteString(f.renderField(focusDescription, "Description:", "\n"+f.desc.View()))
	b.WriteString(f.renderField(focusCategory, "Category:", f.renderCategorySelector()))
	b.WriteString(f.renderField(focusPriority, "Priority:", f.renderPrioritySelector()))
	b.WriteString(f.renderField(focusDueDate, "Due:", f.dueDate.View()))
	b.WriteString(f.renderField(focusEstimate, "Estimate:", f.estimate.View()))
	b.WriteString(f.renderField(focusTags, "Tags:", f.tags.View()))

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	if f.taskID == 0 {
		b.WriteString(submitStyle.Render("[ Create Task ]"))
	} else {
		b.WriteString(submitStyle.Render("[ Save Changes ]"))
	}
	b.WriteString("\n")

	if f.errText != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.MenuItemActive.Render(f.errText))
		b.WriteString("\n")
	}

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// renderField renders a labelled field with focus highlighting
func (f *TaskFormOverlay) renderField(index int, label, value string) string {
	labelStyle := f.styles.Label
	if f.focusIndex == index {
		labelStyle = f.styles.LabelFocused
	}
	return labelStyle.Render(label) + "  " + value + "\n\n"
}

// renderCategorySelector renders the category cycle control
func (f *TaskFormOverlay) renderCategorySelector() string {
	var parts []string
	for i, c := range f.categories {
		style := f.styles.MenuItem
		if i == f.category {
			style = f.styles.MenuItemActive
		}
		parts = append(parts, style.Render(c))
	}
	return strings.Join(parts, "  ")
}

// renderPrioritySelector renders the priority selector
func (f *TaskFormOverlay) renderPrioritySelector() string {
	var parts []string
	for p := domain.PriorityLow; p <= domain.PriorityHigh; p++ {
		style := f.styles.MenuItem
		indicator := " "
		if p == f.priority {
			style = f.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, p.Short())))
	}
	return strings.Join(parts, " ")
}

// submit validates the form and emits a TaskSubmittedMsg
func (f *TaskFormOverlay) submit() tea.Cmd {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.errText = "Task title is required"
		return nil
	}

	var dueDate *time.Time
	if raw := strings.TrimSpace(f.dueDate.Value()); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			f.errText = "Due date must be YYYY-MM-DD"
			return nil
		}
		dueDate = &parsed
	}

	estimate := 0
	if raw := strings.TrimSpace(f.estimate.Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			f.errText = "Estimate must be a number of minutes"
			return nil
		}
		estimate = parsed
	}

	draft := store.Draft{
		Title:         title,
		Description:   f.desc.Value(),
		Category:      f.categories[f.category],
		Priority:      f.priority.String(),
		DueDate:       dueDate,
		EstimatedTime: estimate,
		Tags:          f.tags.Value(),
	}
	taskID := f.taskID

	return tea.Batch(
		func() tea.Msg { return TaskSubmittedMsg{TaskID: taskID, Draft: draft} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (f *TaskFormOverlay) Title() string {
	if f.taskID == 0 {
		return "Create New Task"
	}
	return fmt.Sprintf("Edit Task #%d", f.taskID)
}

// Size returns the overlay dimensions
func (f *TaskFormOverlay) Size() (width, height int) {
	return 70, 28
}
