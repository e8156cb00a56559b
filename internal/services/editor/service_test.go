package editor

import (
	"testing"
	"time"

	"github.com/elenalowe/tasktide/internal/domain"
)

func TestNewService(t *testing.T) {
	svc := NewService()
	if svc == nil {
		t.Fatal("NewService returned nil")
	}

	if svc.GetMode() != ModeNormal {
		t.Errorf("Expected ModeNormal, got %v", svc.GetMode())
	}

	if svc.GetFilter() == nil {
		t.Error("Expected non-nil filter")
	}

	if svc.GetSort() == nil {
		t.Error("Expected non-nil sort")
	}
}

func TestService_ModeTransitions(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		enter    func()
		check    func() bool
		expected Mode
	}{
		{"EnterSearch", svc.EnterSearch, svc.IsSearch, ModeSearch},
		{"EnterGoto", svc.EnterGoto, svc.IsGoto, ModeGoto},
		{"EnterNormal", svc.EnterNormal, svc.IsNormal, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.enter()
			if svc.GetMode() != tt.expected {
				t.Errorf("Expected mode %v, got %v", tt.expected, svc.GetMode())
			}
			if !tt.check() {
				t.Errorf("Check function returned false for %s", tt.name)
			}
		})
	}
}

func TestService_ExitMode(t *testing.T) {
	svc := NewService()

	svc.EnterSearch()
	if !svc.ExitMode() {
		t.Error("ExitMode should return true when leaving a non-normal mode")
	}
	if !svc.IsNormal() {
		t.Error("Expected normal mode after ExitMode")
	}

	if svc.ExitMode() {
		t.Error("ExitMode should return false when already normal")
	}
}

func TestService_FilterState(t *testing.T) {
	svc := NewService()

	if svc.IsFilterActive() {
		t.Error("Fresh service should have no active filter")
	}

	svc.SetSearchQuery("milk")
	if !svc.IsFilterActive() {
		t.Error("Search query should activate the filter")
	}

	svc.ClearSearch()
	svc.SetScope(domain.ScopeOverdue)
	if !svc.IsFilterActive() {
		t.Error("Scope should activate the filter")
	}

	svc.ClearFilters()
	if svc.IsFilterActive() {
		t.Error("ClearFilters should deactivate the filter")
	}
}

func TestService_FilterAndSort(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{ID: 1, Title: "old", Category: "work", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, Title: "new", Category: "work", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 3, Title: "done", Category: "personal", CreatedAt: now.Add(-24 * time.Hour), Completed: true},
	}

	// Default sort: newest created first
	got := svc.FilterAndSort(tasks, now)
	if len(got) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("Expected newest first, got ID %d", got[0].ID)
	}

	svc.SetScope(domain.ScopeActive)
	got = svc.FilterAndSort(tasks, now)
	if len(got) != 2 {
		t.Errorf("Active scope should drop completed tasks, got %d", len(got))
	}
}

func TestService_FilterAndSortByCategory(t *testing.T) {
	svc := NewService()
	now := time.Now()

	tasks := []domain.Task{
		{ID: 1, Title: "a", Category: "work", CreatedAt: now},
		{ID: 2, Title: "b", Category: "personal", CreatedAt: now},
		{ID: 3, Title: "c", Category: "work", CreatedAt: now},
	}

	got := svc.FilterAndSortByCategory(tasks, "work", now)
	if len(got) != 2 {
		t.Fatalf("Expected 2 work tasks, got %d", len(got))
	}
	for _, task := range got {
		if task.Category != "work" {
			t.Errorf("Unexpected category %q", task.Category)
		}
	}
}

func TestService_ToggleSort(t *testing.T) {
	svc := NewService()

	svc.ToggleSort(domain.SortByPriority)
	if svc.GetSort().Field != domain.SortByPriority {
		t.Errorf("Expected priority sort, got %v", svc.GetSort().Field)
	}
	if svc.GetSort().Order != domain.SortAsc {
		t.Errorf("New field should start ascending")
	}

	svc.ToggleSort(domain.SortByPriority)
	if svc.GetSort().Order != domain.SortDesc {
		t.Errorf("Repeated toggle should flip to descending")
	}
}
