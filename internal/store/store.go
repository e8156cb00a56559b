// Package store owns the in-memory task collection and category set.
//
// All mutation goes through a single Store instance guarded by a mutex,
// so callers get the same single-writer guarantee the UI event loop
// provides on its own.
package store

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/elenalowe/tasktide/internal/domain"
)

// DefaultCategories is the category set a fresh profile starts with
var DefaultCategories = []string{"work", "personal", "study", "health", "other"}

// Draft carries the user-supplied fields for creating or editing a task
type Draft struct {
	Title         string
	Description   string
	Category      string // empty = default category
	Priority      string // parsed with domain.ParsePriority; empty = medium
	DueDate       *time.Time
	EstimatedTime int    // minutes, 0 = unset
	Tags          string // comma-separated, split on create
}

// Stats is the derived aggregate view of the collection
type Stats struct {
	Total        int
	Completed    int
	Overdue      int
	CreatedToday int // displayed as "completed today"; see Store.Stats
	TotalMinutes int
}

// Store is the sole owner of the task collection
type Store struct {
	mu         sync.Mutex
	tasks      []domain.Task // newest first
	categories []string
	nextID     int
	nextSubID  int
	logger     *slog.Logger
	now        func() time.Time
}

// New creates an empty store with the default category set
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		categories: slices.Clone(DefaultCategories),
		nextID:     1,
		nextSubID:  1,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates the draft and prepends a new task to the collection.
// An empty title or unknown category is a non-fatal rejection; the
// collection is left unchanged.
func (s *Store) Create(draft Draft) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return domain.Task{}, &domain.StoreError{Op: "create", Err: domain.ErrEmptyTitle}
	}

	category := draft.Category
	if category == "" {
		category = s.categories[0]
	}
	if !slices.Contains(s.categories, category) {
		s.logger.Warn("rejected task with unknown category", "category", category)
		return domain.Task{}, &domain.StoreError{Op: "create", Err: domain.ErrUnknownCategory}
	}

	task := domain.Task{
		ID:            s.nextID,
		Title:         title,
		Description:   strings.TrimSpace(draft.Description),
		Priority:      domain.ParsePriority(draft.Priority),
		Category:      category,
		CreatedAt:     s.now(),
		DueDate:       draft.DueDate,
		EstimatedTime: draft.EstimatedTime,
		Tags:          domain.ParseTags(draft.Tags),
	}
	s.nextID++

	s.tasks = append([]domain.Task{task}, s.tasks...)
	return task, nil
}

// AddSuggestion clones a suggestion template into a fresh task
func (s *Store) AddSuggestion(sg domain.Suggestion) (domain.Task, error) {
	return s.Create(Draft{
		Title:         sg.Title,
		Description:   sg.Description,
		Category:      sg.Category,
		Priority:      sg.Priority.String(),
		EstimatedTime: sg.EstimatedTime,
		Tags:          strings.Join(sg.Tags, ","),
	})
}

// Update replaces the editable fields of an existing task. Identity,
// creation time, completion state, subtasks, and accumulated time are
// preserved. Unknown ids are a silent no-op.
func (s *Store) Update(id int, draft Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return &domain.StoreError{Op: "update", TaskID: id, Err: domain.ErrEmptyTitle}
	}
	category := draft.Category
	if category == "" {
		category = s.tasks[i].Category
	}
	if !slices.Contains(s.categories, category) {
		return &domain.StoreError{Op: "update", TaskID: id, Err: domain.ErrUnknownCategory}
	}

	s.tasks[i].Title = title
	s.tasks[i].Description = strings.TrimSpace(draft.Description)
	s.tasks[i].Category = category
	s.tasks[i].Priority = domain.ParsePriority(draft.Priority)
	s.tasks[i].DueDate = draft.DueDate
	s.tasks[i].EstimatedTime = draft.EstimatedTime
	s.tasks[i].Tags = domain.ParseTags(draft.Tags)
	return nil
}

// ToggleCompletion flips a task's completed flag. Completing a task
// forces every subtask to completed; un-completing leaves subtasks as
// they are. Unknown ids are a silent no-op.
func (s *Store) ToggleCompletion(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	if s.tasks[i].Completed {
		for j := range s.tasks[i].Subtasks {
			s.tasks[i].Subtasks[j].Completed = true
		}
	}
}

// Remove deletes a task. Removing an unknown id is a no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

// AddSubtask appends a checklist item to a task
func (s *Store) AddSubtask(taskID int, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return &domain.StoreError{Op: "add_subtask", TaskID: taskID, Err: domain.ErrEmptyTitle}
	}

	i := s.indexOf(taskID)
	if i < 0 {
		return nil
	}

	s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, domain.Subtask{
		ID:    s.nextSubID,
		Title: title,
	})
	s.nextSubID++
	return nil
}

// ToggleSubtask flips a single subtask's completed flag
func (s *Store) ToggleSubtask(taskID, subtaskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i < 0 {
		return
	}
	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed
			return
		}
	}
}

// RemoveSubtask deletes a checklist item
func (s *Store) RemoveSubtask(taskID, subtaskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i < 0 {
		return
	}
	subs := s.tasks[i].Subtasks
	for j := range subs {
		if subs[j].ID == subtaskID {
			s.tasks[i].Subtasks = append(subs[:j], subs[j+1:]...)
			return
		}
	}
}

// AddTimeSpent credits minutes of focus time to a task. Unknown ids are
// a silent no-op so a finished timer never fails on a deleted task.
func (s *Store) AddTimeSpent(id, minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Warn("focus time for unknown task dropped", "task_id", id, "minutes", minutes)
		return
	}
	s.tasks[i].TimeSpent += minutes
}

// Get returns a task by id
func (s *Store) Get(id int) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns a snapshot of the collection, newest first
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Query returns a restartable sequence of tasks matching the filter.
// The sequence iterates over a snapshot, so store mutations during
// iteration are safe.
func (s *Store) Query(filter *domain.Filter) iter.Seq[domain.Task] {
	snapshot := s.Tasks()
	now := s.now()
	return func(yield func(domain.Task) bool) {
		for _, task := range snapshot {
			if filter != nil && !filter.Matches(task, now) {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}

// Stats returns the derived aggregates for the collection. CreatedToday
// feeds the "completed today" display and compares creation dates, not
// completion dates.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var st Stats
	st.Total = len(s.tasks)
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
		if t.IsOverdue(now) {
			st.Overdue++
		}
		if t.CreatedToday(now) {
			st.CreatedToday++
		}
		st.TotalMinutes += t.TimeSpent
	}
	return st
}

// Categories returns the current category set in order
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// AddCategory appends a category if not already present. Categories are
// never auto-pruned, even when no task uses them.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || slices.Contains(s.categories, name) {
		return
	}
	s.categories = append(s.categories, name)
}

// ReplaceAll swaps in a restored collection and category set, fixing up
// the id counters so new tasks never reuse a restored id
func (s *Store) ReplaceAll(tasks []domain.Task, categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = slices.Clone(tasks)
	if len(categories) > 0 {
		s.categories = slices.Clone(categories)
	} else {
		s.categories = slices.Clone(DefaultCategories)
	}

	s.nextID = 1
	s.nextSubID = 1
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
		for _, sub := range t.Subtasks {
			if sub.ID >= s.nextSubID {
				s.nextSubID = sub.ID + 1
			}
		}
	}
}

// ClearAll empties the collection and restores the default categories
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.categories = slices.Clone(DefaultCategories)
	s.nextID = 1
	s.nextSubID = 1
}

// indexOf returns the slice index for a task id, or -1. Callers hold the
// lock.
func (s *Store) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
