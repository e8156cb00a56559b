package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrEmptyTitle      = errors.New("task title is required")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotFound        = errors.New("not found")
	ErrMalformedBackup = errors.New("malformed backup document")
)

// StoreError represents a rejected store operation
type StoreError struct {
	Op     string // Operation: "create", "update", "import", etc.
	TaskID int    // Optional: specific task ID
	Err    error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.TaskID != 0 {
		return fmt.Sprintf("store %s [#%d]: %v", e.Op, e.TaskID, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
