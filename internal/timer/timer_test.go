package timer

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tm := New(25 * time.Minute)
	if tm.State() != StateIdle {
		t.Errorf("new timer state = %v, want idle", tm.State())
	}
	if m, s := tm.Remaining(); m != 25 || s != 0 {
		t.Errorf("Remaining() = %d:%d, want 25:00", m, s)
	}
	if tm.TaskID() != 0 {
		t.Errorf("idle timer TaskID() = %d, want 0", tm.TaskID())
	}
}

func TestNew_InvalidDurationFallsBack(t *testing.T) {
	tm := New(0)
	if m, _ := tm.Remaining(); m != 25 {
		t.Errorf("fallback duration = %d minutes, want 25", m)
	}
}

func TestTimer_StartPauseResume(t *testing.T) {
	tm := New(25 * time.Minute)

	tm.Start(7)
	if tm.State() != StateRunning || tm.TaskID() != 7 {
		t.Fatalf("after Start: state=%v task=%d", tm.State(), tm.TaskID())
	}

	tm.Tick()
	tm.Pause()
	if tm.State() != StatePaused {
		t.Fatal("Pause() while running should pause")
	}
	if m, s := tm.Remaining(); m != 24 || s != 59 {
		t.Errorf("Remaining() = %d:%02d, want 24:59 after one tick", m, s)
	}

	// Tick while paused must not advance
	tm.Tick()
	if m, s := tm.Remaining(); m != 24 || s != 59 {
		t.Errorf("paused tick advanced the countdown to %d:%02d", m, s)
	}

	tm.Resume()
	if tm.State() != StateRunning {
		t.Error("Resume() while paused should run")
	}
}

func TestTimer_MisuseIsNoop(t *testing.T) {
	tm := New(25 * time.Minute)

	tm.Pause() // idle
	if tm.State() != StateIdle {
		t.Error("Pause() while idle should be a no-op")
	}

	tm.Resume() // idle
	if tm.State() != StateIdle {
		t.Error("Resume() while idle should be a no-op")
	}

	tm.Start(1)
	tm.Resume() // running
	if tm.State() != StateRunning {
		t.Error("Resume() while running should be a no-op")
	}
}

func TestTimer_StartRebinds(t *testing.T) {
	tm := New(25 * time.Minute)

	tm.Start(1)
	tm.Tick()
	tm.Tick()

	tm.Start(2)
	if tm.TaskID() != 2 {
		t.Errorf("TaskID() = %d, want 2 after rebind", tm.TaskID())
	}
	if m, s := tm.Remaining(); m != 25 || s != 0 {
		t.Errorf("rebind should restore full duration, got %d:%02d", m, s)
	}
}

func TestTimer_SecondsRollover(t *testing.T) {
	tm := New(25 * time.Minute)
	tm.Start(1)

	tm.Tick()
	if m, s := tm.Remaining(); m != 24 || s != 59 {
		t.Errorf("decrement from (25,0) = %d:%02d, want 24:59", m, s)
	}
}

func TestTimer_NaturalExpiry(t *testing.T) {
	tm := New(25 * time.Minute)
	tm.Start(7)

	var completions []Completion
	for i := 0; i < 25*60; i++ {
		if done := tm.Tick(); done != nil {
			completions = append(completions, *done)
		}
	}

	if len(completions) != 1 {
		t.Fatalf("got %d completions, want exactly 1", len(completions))
	}
	if completions[0].TaskID != 7 || completions[0].Minutes != 25 {
		t.Errorf("completion = %+v, want {TaskID:7 Minutes:25}", completions[0])
	}

	if tm.State() != StateIdle {
		t.Errorf("state after expiry = %v, want idle", tm.State())
	}
	if m, s := tm.Remaining(); m != 25 || s != 0 {
		t.Errorf("Remaining() after expiry = %d:%02d, want 25:00", m, s)
	}

	// Further ticks stay silent
	if done := tm.Tick(); done != nil {
		t.Error("tick after expiry emitted a completion")
	}
}

func TestTimer_ResetEmitsNothing(t *testing.T) {
	tm := New(25 * time.Minute)
	tm.Start(7)
	tm.Tick()

	tm.Reset()
	if tm.State() != StateIdle || tm.TaskID() != 0 {
		t.Errorf("after Reset: state=%v task=%d, want idle/0", tm.State(), tm.TaskID())
	}
	if m, s := tm.Remaining(); m != 25 || s != 0 {
		t.Errorf("Reset should restore full duration, got %d:%02d", m, s)
	}
}

func TestTimer_String(t *testing.T) {
	tm := New(5 * time.Minute)
	tm.Start(1)
	tm.Tick()
	if got := tm.String(); got != "04:59" {
		t.Errorf("String() = %q, want 04:59", got)
	}
}
