//go:build unix

package launch

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/aelexs/bridge-launcher/internal/domain"
)

// ExecRunner replaces the current process with the server.
type ExecRunner struct {
	exec func(argv0 string, argv []string, envv []string) error
}

// NewExecRunner returns a runner backed by execve(2).
func NewExecRunner() *ExecRunner {
	return &ExecRunner{exec: unix.Exec}
}

// Run resolves the server executable and execs it. On success it does not
// return.
func (r *ExecRunner) Run(_ context.Context, cmd Command) error {
	path, err := lookPath(cmd.Path)
	if err != nil {
		return err
	}

	if err := r.exec(path, cmd.Args, cmd.Env); err != nil {
		return fmt.Errorf("%w: exec %s: %v", domain.ErrLaunchFailed, path, err)
	}
	return nil
}
