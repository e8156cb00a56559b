// Package domain contains core business types for the Tasktide application.
package domain

import (
	"math"
	"strings"
	"time"
)

// Priority represents task priority
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	return [...]string{"low", "medium", "high"}[p]
}

// Short returns single character representation
func (p Priority) Short() string {
	return [...]string{"L", "M", "H"}[p]
}

// ParsePriority maps a priority name to its value.
// Unknown names fall back to medium, matching the form default.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Subtask is a nested checklist item contributing to a task's progress
type Subtask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task represents a single unit of work
type Task struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Completed     bool       `json:"completed"`
	Priority      Priority   `json:"priority"`
	Category      string     `json:"category"`
	CreatedAt     time.Time  `json:"created_at"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Subtasks      []Subtask  `json:"subtasks,omitempty"`
	TimeSpent     int        `json:"time_spent"`     // accumulated minutes
	EstimatedTime int        `json:"estimated_time"` // minutes, 0 = unset
	Tags          []string   `json:"tags,omitempty"`
}

// Progress returns the subtask completion percentage, rounded.
// A task without subtasks reports 100 when completed and 0 otherwise.
func (t Task) Progress() int {
	if len(t.Subtasks) == 0 {
		if t.Completed {
			return 100
		}
		return 0
	}

	done := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(t.Subtasks))))
}

// IsOverdue reports whether the task has a due date in the past and is
// not completed
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Completed
}

// CreatedToday reports whether the task was created on the same calendar
// day as now. The "completed today" stat is computed from this, so it
// counts creations rather than completions.
func (t Task) CreatedToday(now time.Time) bool {
	y1, m1, d1 := t.CreatedAt.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MatchesSearch reports whether the query matches the task title,
// description, or any tag. Matching is a case-insensitive substring
// test; an empty query matches everything.
func (t Task) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
