package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elenalowe/tasktide/internal/timer"
	"github.com/elenalowe/tasktide/internal/types"
	"github.com/elenalowe/tasktide/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	styles *styles.Styles

	timerText  string
	timerState timer.State
	info       string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithTimer adds a focus session readout (e.g. "⏱ 24:59 Write report")
func (sb StatusBar) WithTimer(text string, state timer.State) StatusBar {
	sb.timerText = text
	sb.timerState = state
	return sb
}

// WithInfo adds a right-hand info segment (filter scope, task counts)
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	segments := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if sb.timerText != "" {
		timerStyle := sb.styles.TimerIdle
		switch sb.timerState {
		case timer.StateRunning:
			timerStyle = sb.styles.TimerRunning
		case timer.StatePaused:
			timerStyle = sb.styles.TimerPaused
		}
		segments = append(segments, separator, timerStyle.Render(sb.timerText))
	}

	if hints := GetHints(sb.mode); hints != "" {
		segments = append(segments, separator, sb.styles.StatusHint.Render(hints))
	}

	if sb.info != "" {
		segments = append(segments, separator, sb.styles.StatusInfo.Render(sb.info))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, segments...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
