package launch_test

import (
	"context"
	"testing"

	"github.com/aelexs/bridge-launcher/internal/launch"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRunner records the command it was asked to run.
type fakeRunner struct {
	calls int
	cmd   launch.Command
	err   error
	onRun func(cmd launch.Command)
}

func (f *fakeRunner) Run(_ context.Context, cmd launch.Command) error {
	f.calls++
	f.cmd = cmd
	if f.onRun != nil {
		f.onRun(cmd)
	}
	return f.err
}
