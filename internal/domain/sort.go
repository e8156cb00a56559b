package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByCreated  SortField = "created"
	SortByDueDate  SortField = "due"
	SortByPriority SortField = "priority"
	SortByStatus   SortField = "status"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// A new field starts ascending; the same field flips direction.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of tasks, leaving the input untouched
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	switch s.Field {
	case SortByCreated:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})

	case SortByDueDate:
		// Tasks without a due date sort last in either direction
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].DueDate, result[j].DueDate
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			if s.Order == SortAsc {
				return di.Before(*dj)
			}
			return di.After(*dj)
		})

	case SortByPriority:
		// Ascending = most urgent first
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].Priority > result[j].Priority
			}
			return result[i].Priority < result[j].Priority
		})

	case SortByStatus:
		// Ascending = incomplete before completed
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return !result[i].Completed && result[j].Completed
			}
			return result[i].Completed && !result[j].Completed
		})
	}

	return result
}
