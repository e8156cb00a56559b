package store

import (
	"slices"
	"sync"

	"github.com/elenalowe/tasktide/internal/domain"
)

// SessionLog is the append-only record of naturally completed focus
// sessions. It is never edited, only appended to, counted, and cleared
// by a full reset.
type SessionLog struct {
	mu      sync.Mutex
	records []domain.SessionRecord
}

// NewSessionLog creates an empty log
func NewSessionLog() *SessionLog {
	return &SessionLog{}
}

// Append adds a completed session record
func (l *SessionLog) Append(rec domain.SessionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// Records returns a snapshot of the log in append order
func (l *SessionLog) Records() []domain.SessionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.records)
}

// Count returns the number of completed sessions
func (l *SessionLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Replace swaps in a restored log
func (l *SessionLog) Replace(records []domain.SessionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = slices.Clone(records)
}

// Clear empties the log
func (l *SessionLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}
