// Package editor provides editing mode and view state management
package editor

import (
	"time"

	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeGoto   = types.ModeGoto
)

// Service manages editing state (mode, filter, sort)
type Service struct {
	mode   Mode
	filter *domain.Filter
	sort   *domain.Sort
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		mode:   ModeNormal,
		filter: domain.NewFilter(),
		sort: &domain.Sort{
			Field: domain.SortByCreated,
			Order: domain.SortDesc,
		},
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// EnterNormal switches to normal mode
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// EnterGoto switches to goto mode
func (s *Service) EnterGoto() {
	s.mode = ModeGoto
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// IsGoto returns true if in goto mode
func (s *Service) IsGoto() bool {
	return s.mode == ModeGoto
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.SearchQuery = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.SearchQuery = ""
}

// SetScope sets the filter scope
func (s *Service) SetScope(scope domain.Scope) {
	s.filter.Scope = scope
}

// CycleScope advances the filter scope
func (s *Service) CycleScope() {
	s.filter.CycleScope()
}

// SetCategoryFilter restricts the view to one category; empty clears it
func (s *Service) SetCategoryFilter(category string) {
	s.filter.Category = category
}

// ClearFilters clears all filters
func (s *Service) ClearFilters() {
	s.filter.Clear()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// Sort management

// GetSort returns the current sort settings
func (s *Service) GetSort() *domain.Sort {
	return s.sort
}

// ToggleSort toggles between fields or direction
func (s *Service) ToggleSort(field domain.SortField) {
	s.sort.Toggle(field)
}

// FilterAndSort applies both filter and sort to a task list
func (s *Service) FilterAndSort(tasks []domain.Task, now time.Time) []domain.Task {
	filtered := s.filter.Apply(tasks, now)
	return s.sort.Apply(filtered)
}

// FilterAndSortByCategory filters and sorts tasks, then keeps one
// category's tasks for a board column
func (s *Service) FilterAndSortByCategory(tasks []domain.Task, category string, now time.Time) []domain.Task {
	var inCategory []domain.Task
	for _, task := range s.filter.Apply(tasks, now) {
		if task.Category == category {
			inCategory = append(inCategory, task)
		}
	}
	return s.sort.Apply(inCategory)
}
