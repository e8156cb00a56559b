package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/store"
)

func statsFixture() store.Stats {
	return store.Stats{
		Total:        10,
		Completed:    6,
		Overdue:      1,
		CreatedToday: 2,
		TotalMinutes: 75,
	}
}

// collectMsgs runs a command and flattens any batches into messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Pop())

	help := NewHelpOverlay()
	s.Push(help)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, help, s.Current())

	confirm := NewConfirmDialog("Delete", "Sure?", "delete", 1)
	s.Push(confirm)
	assert.Equal(t, confirm, s.Current())

	assert.Equal(t, Overlay(confirm), s.Pop())
	assert.Equal(t, Overlay(help), s.Current())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStackCloseMsgPopsCurrent(t *testing.T) {
	s := NewStack()
	s.Push(NewHelpOverlay())

	cmd := s.Update(CloseOverlayMsg{})
	assert.Nil(t, cmd)
	assert.True(t, s.IsEmpty())
}

func TestConfirmDialogConfirms(t *testing.T) {
	c := NewConfirmDialog("Delete Task", "Delete 'Buy milk'?", "delete-task", 42)

	_, cmd := c.Update(keyPress("y"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, SelectionMsg{Key: "delete-task", Value: 42}, msgs[0])
	assert.Equal(t, CloseOverlayMsg{}, msgs[1])
}

func TestConfirmDialogCancels(t *testing.T) {
	c := NewConfirmDialog("Delete Task", "Sure?", "delete-task", 42)

	_, cmd := c.Update(keyPress("n"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, CloseOverlayMsg{}, msgs[0])
}

func TestFormRejectsEmptyTitle(t *testing.T) {
	f := NewTaskFormOverlay([]string{"work", "personal"}, "work")

	_, cmd := f.Update(keyPress("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Contains(t, f.View(), "Task title is required")
}

func TestFormSubmitsDraft(t *testing.T) {
	f := NewTaskFormOverlay([]string{"work", "personal"}, "personal")
	f.title.SetValue("Write report")
	f.tags.SetValue("urgent, q3")

	_, cmd := f.Update(keyPress("ctrl+s"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)

	submitted, ok := msgs[0].(TaskSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, 0, submitted.TaskID)
	assert.Equal(t, "Write report", submitted.Draft.Title)
	assert.Equal(t, "personal", submitted.Draft.Category)
	assert.Equal(t, "medium", submitted.Draft.Priority)
	assert.Equal(t, "urgent, q3", submitted.Draft.Tags)
	assert.Equal(t, CloseOverlayMsg{}, msgs[1])
}

func TestFormRejectsBadDueDate(t *testing.T) {
	f := NewTaskFormOverlay([]string{"work"}, "work")
	f.title.SetValue("Task")
	f.dueDate.SetValue("tomorrow")

	_, cmd := f.Update(keyPress("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Contains(t, f.View(), "YYYY-MM-DD")
}

func TestEditFormCarriesTaskID(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	task := domain.Task{
		ID:       7,
		Title:    "Existing",
		Category: "study",
		Priority: domain.PriorityHigh,
		DueDate:  &due,
		Tags:     []string{"a", "b"},
	}
	f := NewEditTaskOverlay(task, []string{"work", "study"})

	_, cmd := f.Update(keyPress("ctrl+s"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)

	submitted := msgs[0].(TaskSubmittedMsg)
	assert.Equal(t, 7, submitted.TaskID)
	assert.Equal(t, "Existing", submitted.Draft.Title)
	assert.Equal(t, "study", submitted.Draft.Category)
	assert.Equal(t, "high", submitted.Draft.Priority)
	require.NotNil(t, submitted.Draft.DueDate)
	assert.True(t, due.Equal(*submitted.Draft.DueDate))
	assert.Equal(t, "a, b", submitted.Draft.Tags)
}

func TestDetailTogglesSubtask(t *testing.T) {
	task := domain.Task{
		ID:    3,
		Title: "Parent",
		Subtasks: []domain.Subtask{
			{ID: 1, Title: "one"},
			{ID: 2, Title: "two"},
		},
	}
	d := NewTaskDetailOverlay(task)

	_, _ = d.Update(keyPress("j"))
	_, cmd := d.Update(keyPress(" "))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, ToggleSubtaskMsg{TaskID: 3, SubtaskID: 2}, msgs[0])
}

func TestDetailAddsSubtask(t *testing.T) {
	d := NewTaskDetailOverlay(domain.Task{ID: 5, Title: "Parent"})

	_, _ = d.Update(keyPress("a"))
	for _, r := range "new step" {
		_, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := d.Update(keyPress("enter"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, AddSubtaskMsg{TaskID: 5, Title: "new step"}, msgs[0])
}

func TestDetailStartsTimer(t *testing.T) {
	d := NewTaskDetailOverlay(domain.Task{ID: 9, Title: "Focus me"})

	_, cmd := d.Update(keyPress("s"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, StartTimerMsg{TaskID: 9}, msgs[0])
	assert.Equal(t, CloseOverlayMsg{}, msgs[1])
}

func TestSuggestionsPick(t *testing.T) {
	s := NewSuggestionsOverlay(domain.DefaultSuggestions)

	_, _ = s.Update(keyPress("j"))
	_, cmd := s.Update(keyPress("enter"))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)

	picked, ok := msgs[0].(SuggestionPickedMsg)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultSuggestions[1].Title, picked.Suggestion.Title)
}

func TestStatsViewShowsCounts(t *testing.T) {
	s := NewStatsOverlay(statsFixture(), 4)

	view := s.View()
	assert.Contains(t, view, "Total tasks")
	assert.Contains(t, view, "Focus sessions")
	assert.Contains(t, view, "1h 15m")
}
