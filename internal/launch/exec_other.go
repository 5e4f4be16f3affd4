//go:build !unix

package launch

import "context"

// ExecRunner runs the server as a child process on platforms without
// execve(2), mirroring its exit status.
type ExecRunner struct {
	child *ChildRunner
}

// NewExecRunner returns a runner that supervises the server as a child.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{child: &ChildRunner{}}
}

// Run runs the server until it exits.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	return r.child.Run(ctx, cmd)
}
