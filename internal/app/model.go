// Package app contains the main Bubble Tea model wiring the task store,
// focus timer, persistence, and UI components together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/config"
	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/services/editor"
	"github.com/elenalowe/tasktide/internal/services/notify"
	"github.com/elenalowe/tasktide/internal/storage"
	"github.com/elenalowe/tasktide/internal/store"
	"github.com/elenalowe/tasktide/internal/timer"
	"github.com/elenalowe/tasktide/internal/types"
	"github.com/elenalowe/tasktide/internal/ui/board"
	"github.com/elenalowe/tasktide/internal/ui/compact"
	"github.com/elenalowe/tasktide/internal/ui/overlay"
	"github.com/elenalowe/tasktide/internal/ui/statusbar"
	"github.com/elenalowe/tasktide/internal/ui/styles"
	"github.com/elenalowe/tasktide/internal/ui/toast"
)

// ViewMode determines which main view is rendered
type ViewMode int

const (
	ViewModeBoard ViewMode = iota
	ViewModeCompact
)

// tickMsg drives the once-per-second heartbeat: toast expiry and the
// focus timer countdown
type tickMsg time.Time

// Model is the top-level Bubble Tea model
type Model struct {
	cfg      *config.Config
	store    *store.Store
	sessions *store.SessionLog
	timer    *timer.Timer
	persist  *storage.Persister
	notifier *notify.Notifier
	editor   *editor.Service
	logger   *slog.Logger

	overlayStack *overlay.Stack
	styles       *styles.Styles
	toasts       []types.Toast

	viewMode    ViewMode
	cursor      board.Cursor
	compactView *compact.CompactView
	searchInput textinput.Model

	width  int
	height int
}

// New creates the application model and restores persisted state
func New(cfg *config.Config, kv storage.KV, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	taskStore := store.New(logger)
	sessions := store.NewSessionLog()
	persist := storage.NewPersister(kv, logger)

	snap := persist.Load()
	if len(snap.Tasks) > 0 || len(snap.Categories) > 0 {
		taskStore.ReplaceAll(snap.Tasks, snap.Categories)
		sessions.Replace(snap.Sessions)
	}

	viewMode := ViewModeBoard
	if snap.CompactView || cfg.Display.StartCompact {
		viewMode = ViewModeCompact
	}

	si := textinput.New()
	si.Placeholder = "search..."
	si.CharLimit = 100
	si.Width = 30

	return Model{
		cfg:          cfg,
		store:        taskStore,
		sessions:     sessions,
		timer:        timer.New(time.Duration(cfg.Timer.SessionMinutes) * time.Minute),
		persist:      persist,
		notifier:     notify.New(&notify.ExecRunner{}, logger),
		editor:       editor.NewService(),
		logger:       logger,
		overlayStack: overlay.NewStack(),
		styles:       styles.New(),
		viewMode:     viewMode,
		compactView:  compact.NewCompactView(nil, 80, 24),
		searchInput:  si,
	}
}

// Init starts the heartbeat
func (m Model) Init() tea.Cmd {
	return tickEvery(time.Second)
}

// tickEvery returns a command that ticks after the given duration
func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compactView.SetDimensions(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		m.expireToasts()
		var cmd tea.Cmd
		if done := m.timer.Tick(); done != nil {
			cmd = m.completeSession(*done)
		}
		return m, tea.Batch(cmd, tickEvery(time.Second))

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case overlay.ToggleSubtaskMsg:
		m.store.ToggleSubtask(msg.TaskID, msg.SubtaskID)
		m.refreshDetailOverlay(msg.TaskID)
		m.save()
		return m, nil

	case overlay.AddSubtaskMsg:
		if err := m.store.AddSubtask(msg.TaskID, msg.Title); err != nil {
			m.addToast(types.ToastError, err.Error(), 5*time.Second)
			return m, nil
		}
		m.refreshDetailOverlay(msg.TaskID)
		m.save()
		return m, nil

	case overlay.RemoveSubtaskMsg:
		m.store.RemoveSubtask(msg.TaskID, msg.SubtaskID)
		m.refreshDetailOverlay(msg.TaskID)
		m.save()
		return m, nil

	case overlay.StartTimerMsg:
		return m.startSession(msg.TaskID)

	case overlay.SuggestionPickedMsg:
		task, err := m.store.AddSuggestion(msg.Suggestion)
		if err != nil {
			m.addToast(types.ToastError, err.Error(), 5*time.Second)
			return m, nil
		}
		m.addToast(types.ToastSuccess, fmt.Sprintf("Added: %s", task.Title), 3*time.Second)
		m.save()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.save()
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	if msg.String() == "esc" && m.editor.ExitMode() {
		m.searchInput.Blur()
		m.editor.ClearSearch()
		return m, nil
	}

	switch m.editor.GetMode() {
	case editor.ModeNormal:
		return m.handleNormalMode(msg)
	case editor.ModeGoto:
		return m.handleGotoMode(msg)
	case editor.ModeSearch:
		return m.handleSearchMode(msg)
	default:
		return m, nil
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.save()
		return m, tea.Quit

	// Vertical navigation
	case "j", "down":
		m.moveCursorVertical(1)
		return m, nil
	case "k", "up":
		m.moveCursorVertical(-1)
		return m, nil

	// Horizontal navigation (board only)
	case "h", "left":
		m.moveCursorHorizontal(-1)
		return m, nil
	case "l", "right":
		m.moveCursorHorizontal(1)
		return m, nil

	case "g":
		m.editor.EnterGoto()
		return m, nil

	case "v":
		if m.viewMode == ViewModeBoard {
			m.viewMode = ViewModeCompact
		} else {
			m.viewMode = ViewModeBoard
		}
		m.save()
		return m, nil

	// Task management
	case "n":
		form := overlay.NewTaskFormOverlay(m.store.Categories(), m.cfg.Display.DefaultCategory)
		return m, m.overlayStack.Push(form)

	case "e":
		if task := m.currentTask(); task != nil {
			form := overlay.NewEditTaskOverlay(*task, m.store.Categories())
			return m, m.overlayStack.Push(form)
		}
		return m, nil

	case "enter":
		if task := m.currentTask(); task != nil {
			return m, m.overlayStack.Push(overlay.NewTaskDetailOverlay(*task))
		}
		return m, nil

	case " ":
		if task := m.currentTask(); task != nil {
			m.store.ToggleCompletion(task.ID)
			m.save()
		}
		return m, nil

	case "d":
		if task := m.currentTask(); task != nil {
			dialog := overlay.NewConfirmDialog(
				"Delete Task",
				fmt.Sprintf("Delete '%s'?", task.Title),
				"delete-task",
				task.ID,
			)
			return m, m.overlayStack.Push(dialog)
		}
		return m, nil

	case "u":
		return m, m.overlayStack.Push(overlay.NewSuggestionsOverlay(domain.DefaultSuggestions))

	case "X":
		if m.store.Len() > 0 {
			dialog := overlay.NewConfirmDialog(
				"Clear All Tasks",
				fmt.Sprintf("Delete all %d tasks and session history?", m.store.Len()),
				"clear-all",
				nil,
			)
			return m, m.overlayStack.Push(dialog)
		}
		return m, nil

	// Focus timer
	case "s":
		if task := m.currentTask(); task != nil {
			return m.startSession(task.ID)
		}
		return m, nil

	case "p":
		switch m.timer.State() {
		case timer.StateRunning:
			m.timer.Pause()
		case timer.StatePaused:
			m.timer.Resume()
		}
		return m, nil

	case "S":
		if m.timer.State() != timer.StateIdle {
			m.timer.Reset()
			m.addToast(types.ToastInfo, "Session stopped", 3*time.Second)
		}
		return m, nil

	// Filter and sort
	case "f":
		m.editor.CycleScope()
		return m, nil

	case "c":
		m.editor.ClearFilters()
		return m, nil

	case "/":
		m.editor.EnterSearch()
		m.searchInput.SetValue(m.editor.GetFilter().SearchQuery)
		return m, m.searchInput.Focus()

	case "1":
		m.editor.ToggleSort(domain.SortByCreated)
		return m, nil
	case "2":
		m.editor.ToggleSort(domain.SortByDueDate)
		return m, nil
	case "3":
		m.editor.ToggleSort(domain.SortByPriority)
		return m, nil
	case "4":
		m.editor.ToggleSort(domain.SortByStatus)
		return m, nil

	case "t":
		return m, m.overlayStack.Push(overlay.NewStatsOverlay(m.store.Stats(), m.sessions.Count()))

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// handleGotoMode processes keyboard input in goto mode
func (m Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	defer m.editor.EnterNormal()

	switch msg.String() {
	case "g":
		m.cursor.Task = 0
		m.compactView.GotoTop()
	case "e":
		m.cursor.Task = max(0, len(m.currentColumn())-1)
		m.compactView.GotoBottom()
	case "h":
		m.cursor.Column = 0
		m.cursor.Task = 0
	case "l":
		m.cursor.Column = max(0, len(m.store.Categories())-1)
		m.cursor.Task = 0
	}

	return m, nil
}

// handleSearchMode processes keyboard input in search mode
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editor.EnterNormal()
		m.searchInput.Blur()
		return m, nil
	case "esc":
		// handled in handleKey; kept for clarity when mode is re-entered
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.editor.SetSearchQuery(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

// handleOverlayKey routes key input to the overlay stack
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.save()
		return m, tea.Quit
	}
	return m, m.overlayStack.Update(msg)
}

// handleSelection reacts to overlay menu selections
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case "delete-task":
		if id, ok := msg.Value.(int); ok {
			m.store.Remove(id)
			m.clampCursor()
			m.addToast(types.ToastSuccess, "Task deleted", 3*time.Second)
			m.save()
		}
	case "clear-all":
		m.store.ClearAll()
		m.sessions.Clear()
		m.timer.Reset()
		m.cursor = board.Cursor{}
		m.persist.Clear()
		m.addToast(types.ToastWarning, "All tasks cleared", 3*time.Second)
	}
	return m, nil
}

// handleTaskSubmitted creates or updates a task from the form overlay
func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.TaskID == 0 {
		task, err := m.store.Create(msg.Draft)
		if err != nil {
			m.addToast(types.ToastError, err.Error(), 5*time.Second)
			return m, nil
		}
		m.addToast(types.ToastSuccess, fmt.Sprintf("Created: %s", task.Title), 3*time.Second)
	} else {
		if err := m.store.Update(msg.TaskID, msg.Draft); err != nil {
			m.addToast(types.ToastError, err.Error(), 5*time.Second)
			return m, nil
		}
		m.addToast(types.ToastSuccess, "Task updated", 3*time.Second)
	}
	m.save()
	return m, nil
}

// startSession binds the focus timer to a task
func (m Model) startSession(taskID int) (tea.Model, tea.Cmd) {
	task, ok := m.store.Get(taskID)
	if !ok {
		return m, nil
	}
	m.timer.Start(taskID)
	m.addToast(types.ToastInfo, fmt.Sprintf("Focus: %s", task.Title), 3*time.Second)
	return m, nil
}

// completeSession records a finished focus session: session log entry,
// time credit on the task, optional desktop notification
func (m *Model) completeSession(done timer.Completion) tea.Cmd {
	m.sessions.Append(domain.SessionRecord{
		TaskID:      done.TaskID,
		Minutes:     done.Minutes,
		CompletedAt: time.Now(),
	})
	m.store.AddTimeSpent(done.TaskID, done.Minutes)
	m.save()

	title := "task"
	if task, ok := m.store.Get(done.TaskID); ok {
		title = task.Title
	}
	m.addToast(types.ToastSuccess, fmt.Sprintf("Session complete: %s", title), 5*time.Second)

	if !m.cfg.Notifications.SessionComplete {
		return nil
	}
	notifier := m.notifier
	minutes := done.Minutes
	return func() tea.Msg {
		notifier.SessionComplete(context.Background(), title, minutes)
		return nil
	}
}

// refreshDetailOverlay pushes the latest task copy into an open detail
// overlay after a subtask mutation
func (m *Model) refreshDetailOverlay(taskID int) {
	detail, ok := m.overlayStack.Current().(*overlay.TaskDetailOverlay)
	if !ok {
		return
	}
	if task, found := m.store.Get(taskID); found {
		detail.SetTask(task)
	}
}

// save persists the full application state
func (m *Model) save() {
	m.persist.Save(storage.Snapshot{
		Tasks:       m.store.Tasks(),
		Categories:  m.store.Categories(),
		Sessions:    m.sessions.Records(),
		CompactView: m.viewMode == ViewModeCompact,
	})
}

// addToast appends a toast with an expiry
func (m *Model) addToast(level types.ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, types.Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	})
}

// expireToasts drops toasts past their expiry
func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// buildColumns converts tasks into board columns, one per category,
// applying the active filter and sort
func (m Model) buildColumns() []board.Column {
	tasks := m.store.Tasks()
	now := time.Now()

	var columns []board.Column
	for _, category := range m.store.Categories() {
		columns = append(columns, board.Column{
			Title: category,
			Tasks: m.editor.FilterAndSortByCategory(tasks, category, now),
		})
	}
	return columns
}

// visibleTasks returns the flat filtered and sorted task list for the
// compact view
func (m Model) visibleTasks() []domain.Task {
	return m.editor.FilterAndSort(m.store.Tasks(), time.Now())
}

// currentColumn returns the tasks in the cursor's column
func (m Model) currentColumn() []domain.Task {
	columns := m.buildColumns()
	if m.cursor.Column < 0 || m.cursor.Column >= len(columns) {
		return nil
	}
	return columns[m.cursor.Column].Tasks
}

// currentTask returns the task under the cursor, or nil
func (m Model) currentTask() *domain.Task {
	if m.viewMode == ViewModeCompact {
		m.compactView.SetTasks(m.visibleTasks())
		return m.compactView.GetCurrentTask()
	}

	column := m.currentColumn()
	if m.cursor.Task < 0 || m.cursor.Task >= len(column) {
		return nil
	}
	task := column[m.cursor.Task]
	return &task
}

// moveCursorVertical moves within a column or the compact list
func (m *Model) moveCursorVertical(delta int) {
	if m.viewMode == ViewModeCompact {
		m.compactView.SetTasks(m.visibleTasks())
		if delta > 0 {
			m.compactView.MoveDown(delta)
		} else {
			m.compactView.MoveUp(-delta)
		}
		return
	}

	column := m.currentColumn()
	next := m.cursor.Task + delta
	if next >= 0 && next < len(column) {
		m.cursor.Task = next
	}
}

// moveCursorHorizontal moves between board columns
func (m *Model) moveCursorHorizontal(delta int) {
	if m.viewMode == ViewModeCompact {
		return
	}

	columnCount := len(m.store.Categories())
	next := m.cursor.Column + delta
	if next >= 0 && next < columnCount {
		m.cursor.Column = next
		m.clampCursor()
	}
}

// clampCursor keeps the cursor within the current column's bounds
func (m *Model) clampCursor() {
	column := m.currentColumn()
	if m.cursor.Task >= len(column) {
		m.cursor.Task = max(0, len(column)-1)
	}
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var mainView string
	if m.viewMode == ViewModeCompact {
		m.compactView.SetTasks(m.visibleTasks())
		mainView = m.compactView.Render()
	} else {
		mainView = board.Render(m.buildColumns(), m.cursor, time.Now(), m.styles, m.width, m.height-2)
	}

	statusBarView := m.renderStatusBar()
	view := lipgloss.JoinVertical(lipgloss.Left, mainView, statusBarView)

	// If overlay is open, render it on top (centered)
	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()
		overlayWidth, overlayHeight := current.Size()

		if title := current.Title(); title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		centeredOverlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlayView,
		)

		view = lipgloss.JoinVertical(lipgloss.Left, view, centeredOverlay)
	}

	// Render toasts in bottom-right corner
	if len(m.toasts) > 0 {
		toastView := toast.New(m.styles).Render(m.toasts, m.width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// renderStatusBar composes the status bar with timer and filter info
func (m Model) renderStatusBar() string {
	sb := statusbar.New(m.editor.GetMode(), m.width, m.styles)

	if m.timer.State() != timer.StateIdle {
		text := "⏱ " + m.timer.String()
		if task, ok := m.store.Get(m.timer.TaskID()); ok {
			text += " " + task.Title
		}
		sb = sb.WithTimer(text, m.timer.State())
	}

	var info string
	if m.editor.IsSearch() {
		info = "/" + m.searchInput.Value()
	} else if m.editor.IsFilterActive() {
		info = m.editor.GetFilter().Scope.String()
		if query := m.editor.GetFilter().SearchQuery; query != "" {
			info += " /" + query
		}
	}
	if info != "" {
		sb = sb.WithInfo(info)
	}

	return sb.Render()
}
