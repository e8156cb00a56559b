// Package timer implements the countdown work-session timer.
//
// The timer is pure state: it never schedules its own ticks. The caller
// feeds it one Tick per elapsed wall-clock second and reacts to the
// Completion it returns on natural expiry. That keeps the tick source
// (a Bubble Tea command in the TUI) cancellable and testable.
package timer

import (
	"fmt"
	"time"
)

// DefaultDuration is the standard focus session length
const DefaultDuration = 25 * time.Minute

// State represents the timer lifecycle
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	return [...]string{"idle", "running", "paused"}[s]
}

// Completion is emitted exactly once when a running timer reaches zero.
// Manual reset never produces one.
type Completion struct {
	TaskID  int
	Minutes int
}

// Timer is a single countdown bound to at most one task
type Timer struct {
	state     State
	taskID    int
	remaining int // seconds
	duration  time.Duration
}

// New creates an idle timer with the given session duration.
// Non-positive durations fall back to the default.
func New(duration time.Duration) *Timer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Timer{
		duration:  duration,
		remaining: int(duration.Seconds()),
	}
}

// State returns the current lifecycle state
func (t *Timer) State() State {
	return t.state
}

// Running reports whether the timer is counting down
func (t *Timer) Running() bool {
	return t.state == StateRunning
}

// TaskID returns the bound task id, or 0 when idle
func (t *Timer) TaskID() int {
	if t.state == StateIdle {
		return 0
	}
	return t.taskID
}

// Remaining returns the countdown as minutes and seconds
func (t *Timer) Remaining() (minutes, seconds int) {
	return t.remaining / 60, t.remaining % 60
}

// Start binds the timer to a task and begins a full countdown. Starting
// while already bound rebinds silently; the displaced task gets no
// credit for the abandoned run.
func (t *Timer) Start(taskID int) {
	t.taskID = taskID
	t.remaining = int(t.duration.Seconds())
	t.state = StateRunning
}

// Pause stops the countdown without losing progress. No-op unless
// running.
func (t *Timer) Pause() {
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Resume continues a paused countdown. No-op unless paused.
func (t *Timer) Resume() {
	if t.state == StatePaused {
		t.state = StateRunning
	}
}

// Reset cancels the session: the binding is cleared and the countdown
// restored to the full duration. No completion is emitted.
func (t *Timer) Reset() {
	t.state = StateIdle
	t.taskID = 0
	t.remaining = int(t.duration.Seconds())
}

// Tick consumes one second of wall-clock time. When the countdown hits
// zero the timer returns to idle and reports the completed session; the
// returned Completion is non-nil exactly once per run.
func (t *Timer) Tick() *Completion {
	if t.state != StateRunning {
		return nil
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return nil
	}

	done := &Completion{
		TaskID:  t.taskID,
		Minutes: int(t.duration.Minutes()),
	}
	t.Reset()
	return done
}

// String renders the countdown as mm:ss for display
func (t *Timer) String() string {
	m, s := t.Remaining()
	return fmt.Sprintf("%02d:%02d", m, s)
}
