// Package notify delivers desktop notifications for finished focus
// sessions. Delivery is fire-and-forget: a missing notifier binary or a
// denied permission is logged and otherwise ignored.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"
)

// CommandRunner abstracts command execution for testing
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs real commands using os/exec
type ExecRunner struct{}

// Run executes a command with a 5-second timeout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	return exec.CommandContext(ctx, name, args...).Run()
}

// Notifier sends desktop notifications through the platform notifier
type Notifier struct {
	runner CommandRunner
	logger *slog.Logger
	goos   string
}

// New creates a notifier for the current platform
func New(runner CommandRunner, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{runner: runner, logger: logger, goos: runtime.GOOS}
}

// Notify displays a notification. Failures never propagate; the timer
// transition that triggered the notification must not be blocked.
func (n *Notifier) Notify(ctx context.Context, title, message string) {
	var err error
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		err = n.runner.Run(ctx, "osascript", "-e", script)
	default:
		err = n.runner.Run(ctx, "notify-send", title, message)
	}

	if err != nil {
		n.logger.Warn("notification delivery failed", "error", err)
	}
}

// SessionComplete announces a naturally finished focus session
func (n *Notifier) SessionComplete(ctx context.Context, taskTitle string, minutes int) {
	message := fmt.Sprintf("%d focused minutes on: %s", minutes, taskTitle)
	n.Notify(ctx, "Focus session complete", message)
}
