package statusbar

import (
	"strings"
	"testing"

	"github.com/elenalowe/tasktide/internal/timer"
	"github.com/elenalowe/tasktide/internal/types"
	"github.com/elenalowe/tasktide/internal/ui/styles"
)

func TestRenderShowsModeBadge(t *testing.T) {
	s := styles.New()
	sb := New(types.ModeNormal, 120, s)

	got := sb.Render()
	if !strings.Contains(got, "NORMAL") {
		t.Errorf("Render() should contain mode badge, got: %q", got)
	}
	if !strings.Contains(got, "q: quit") {
		t.Errorf("Render() should contain normal mode hints")
	}
}

func TestRenderSearchHints(t *testing.T) {
	s := styles.New()
	sb := New(types.ModeSearch, 120, s)

	got := sb.Render()
	if !strings.Contains(got, "Type to search") {
		t.Errorf("Render() should contain search hints, got: %q", got)
	}
}

func TestRenderWithTimer(t *testing.T) {
	s := styles.New()
	sb := New(types.ModeNormal, 120, s).WithTimer("⏱ 24:59", timer.StateRunning)

	got := sb.Render()
	if !strings.Contains(got, "24:59") {
		t.Errorf("Render() should contain timer readout, got: %q", got)
	}
}

func TestRenderWithInfo(t *testing.T) {
	s := styles.New()
	sb := New(types.ModeNormal, 120, s).WithInfo("overdue • 3 tasks")

	got := sb.Render()
	if !strings.Contains(got, "overdue • 3 tasks") {
		t.Errorf("Render() should contain info segment, got: %q", got)
	}
}
