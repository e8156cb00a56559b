package compact

import (
	"strings"
	"testing"
	"time"

	"github.com/elenalowe/tasktide/internal/domain"
)

func sampleTasks() []domain.Task {
	due := time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local)
	return []domain.Task{
		{ID: 1, Title: "Write report", Category: "work", Priority: domain.PriorityHigh, DueDate: &due},
		{ID: 2, Title: "Buy milk", Category: "personal", Priority: domain.PriorityLow, Completed: true},
		{ID: 3, Title: "Read chapter", Category: "study", Priority: domain.PriorityMedium,
			Subtasks: []domain.Subtask{{ID: 1, Title: "a", Completed: true}, {ID: 2, Title: "b"}}},
	}
}

func TestRenderShowsRows(t *testing.T) {
	cv := NewCompactView(sampleTasks(), 100, 30)
	cv.now = func() time.Time { return time.Date(2026, 1, 5, 12, 0, 0, 0, time.Local) }

	got := cv.Render()
	for _, want := range []string{"Title", "Write report", "Buy milk", "Read chapter", "done", "late", "50%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderEmptyState(t *testing.T) {
	cv := NewCompactView(nil, 100, 30)
	got := cv.Render()
	if !strings.Contains(got, "No tasks to display") {
		t.Errorf("Render() should show empty state, got:\n%s", got)
	}
}

func TestCursorMovement(t *testing.T) {
	cv := NewCompactView(sampleTasks(), 100, 30)

	cv.MoveDown(1)
	if cv.GetCursor() != 1 {
		t.Errorf("MoveDown: cursor = %d, want 1", cv.GetCursor())
	}

	cv.MoveDown(10)
	if cv.GetCursor() != 2 {
		t.Errorf("MoveDown past end: cursor = %d, want 2", cv.GetCursor())
	}

	cv.MoveUp(10)
	if cv.GetCursor() != 0 {
		t.Errorf("MoveUp past start: cursor = %d, want 0", cv.GetCursor())
	}

	cv.GotoBottom()
	if task := cv.GetCurrentTask(); task == nil || task.ID != 3 {
		t.Errorf("GotoBottom: current task = %v, want ID 3", task)
	}
}

func TestSetTasksClampsCursor(t *testing.T) {
	cv := NewCompactView(sampleTasks(), 100, 30)
	cv.GotoBottom()

	cv.SetTasks(sampleTasks()[:1])
	if cv.GetCursor() != 0 {
		t.Errorf("SetTasks: cursor = %d, want 0", cv.GetCursor())
	}
}

func TestScrollIndicator(t *testing.T) {
	tasks := make([]domain.Task, 20)
	for i := range tasks {
		tasks[i] = domain.Task{ID: i + 1, Title: "Task", Category: "work"}
	}
	cv := NewCompactView(tasks, 100, 10)

	got := cv.Render()
	if !strings.Contains(got, "more tasks") {
		t.Errorf("Render() should show scroll indicator for overflowing lists")
	}
}

func TestGetCurrentTaskEmpty(t *testing.T) {
	cv := NewCompactView(nil, 100, 30)
	if cv.GetCurrentTask() != nil {
		t.Error("GetCurrentTask() on empty view should be nil")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a very long title here", 10, "a very ..."},
		{"abc", 2, ".."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
