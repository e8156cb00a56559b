package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeRunner records invocations and returns a canned error
type fakeRunner struct {
	name string
	args []string
	err  error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.name = name
	f.args = args
	return f.err
}

func testNotifier(runner CommandRunner, goos string) *Notifier {
	n := New(runner, slog.New(slog.NewTextHandler(io.Discard, nil)))
	n.goos = goos
	return n
}

func TestNotifier_Linux(t *testing.T) {
	runner := &fakeRunner{}
	n := testNotifier(runner, "linux")

	n.Notify(context.Background(), "Title", "Body")

	assert.Equal(t, "notify-send", runner.name)
	assert.Equal(t, []string{"Title", "Body"}, runner.args)
}

func TestNotifier_Darwin(t *testing.T) {
	runner := &fakeRunner{}
	n := testNotifier(runner, "darwin")

	n.Notify(context.Background(), "Title", "Body")

	assert.Equal(t, "osascript", runner.name)
	assert.Contains(t, runner.args[1], "display notification")
}

func TestNotifier_FailureIsSwallowed(t *testing.T) {
	runner := &fakeRunner{err: errors.New("no notification daemon")}
	n := testNotifier(runner, "linux")

	// Must not panic or propagate
	n.SessionComplete(context.Background(), "Buy milk", 25)
}

func TestNotifier_SessionComplete(t *testing.T) {
	runner := &fakeRunner{}
	n := testNotifier(runner, "linux")

	n.SessionComplete(context.Background(), "Buy milk", 25)

	assert.Equal(t, "Focus session complete", runner.args[0])
	assert.Contains(t, runner.args[1], "25 focused minutes")
	assert.Contains(t, runner.args[1], "Buy milk")
}
