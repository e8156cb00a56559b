package domain

import "time"

// SessionRecord is a log entry created when a focus timer naturally
// expires while bound to a task. Manual pause or reset never produces
// a record.
type SessionRecord struct {
	TaskID      int       `json:"task_id"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completed_at"`
}
