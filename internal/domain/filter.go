package domain

import "time"

// Scope selects which slice of the collection a view shows
type Scope int

const (
	ScopeAll Scope = iota
	ScopeActive
	ScopeCompleted
	ScopeOverdue
)

func (s Scope) String() string {
	return [...]string{"all", "active", "completed", "overdue"}[s]
}

// Filter represents task filtering state
type Filter struct {
	Scope       Scope
	Category    string // empty = all categories
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{Scope: ScopeAll}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return f.Scope != ScopeAll || f.Category != "" || f.SearchQuery != ""
}

// Matches returns true if the task passes the scope, category, and
// search query. The criteria compose with AND.
func (f *Filter) Matches(t Task, now time.Time) bool {
	switch f.Scope {
	case ScopeActive:
		if t.Completed {
			return false
		}
	case ScopeCompleted:
		if !t.Completed {
			return false
		}
	case ScopeOverdue:
		if !t.IsOverdue(now) {
			return false
		}
	}

	if f.Category != "" && t.Category != f.Category {
		return false
	}

	return t.MatchesSearch(f.SearchQuery)
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task, now time.Time) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task, now) {
			result = append(result, task)
		}
	}
	return result
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Scope = ScopeAll
	f.Category = ""
	f.SearchQuery = ""
}

// CycleScope advances to the next scope, wrapping back to all
func (f *Filter) CycleScope() {
	f.Scope = (f.Scope + 1) % 4
}
