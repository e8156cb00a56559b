package toast

import (
	"strings"
	"testing"

	"github.com/elenalowe/tasktide/internal/types"
	"github.com/elenalowe/tasktide/internal/ui/styles"
)

func TestRenderEmpty(t *testing.T) {
	r := New(styles.New())
	if got := r.Render(nil, 120); got != "" {
		t.Errorf("Render() with no toasts should be empty, got %q", got)
	}
}

func TestRenderStacksToasts(t *testing.T) {
	r := New(styles.New())
	toasts := []types.Toast{
		{Level: types.ToastSuccess, Message: "Task created"},
		{Level: types.ToastError, Message: "Export failed"},
	}

	got := r.Render(toasts, 120)
	if !strings.Contains(got, "Task created") || !strings.Contains(got, "Export failed") {
		t.Errorf("Render() should contain all toast messages, got:\n%s", got)
	}
}
