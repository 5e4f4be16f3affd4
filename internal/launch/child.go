package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/aelexs/bridge-launcher/internal/domain"
)

// ExitError reports a server that ran and exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("server exited with status %d", e.Code)
}

// ExitCode returns the status the launcher should exit with.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ChildRunner runs the server as a child process. Signals received by the
// launcher are forwarded to the child and the child's exit status is
// returned as an *ExitError, so the launcher behaves like the server it
// started.
type ChildRunner struct {
	// Stdin, Stdout and Stderr default to the launcher's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Signals replaces OS signal delivery when non-nil.
	Signals <-chan os.Signal

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Run starts the server and waits for it to exit. Cancelling ctx sends the
// server a termination signal; Run still waits for the exit.
func (r *ChildRunner) Run(ctx context.Context, cmd Command) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path, err := lookPath(cmd.Path)
	if err != nil {
		return err
	}

	proc := &exec.Cmd{
		Path:   path,
		Args:   cmd.Args,
		Env:    cmd.Env,
		Stdin:  orDefault[io.Reader](r.Stdin, os.Stdin),
		Stdout: orDefault[io.Writer](r.Stdout, os.Stdout),
		Stderr: orDefault[io.Writer](r.Stderr, os.Stderr),
	}

	// Subscribe before starting so no signal between Start and the
	// forwarding loop is lost.
	sigs := r.Signals
	if sigs == nil {
		ch := make(chan os.Signal, len(forwardedSignals))
		signal.Notify(ch, forwardedSignals...)
		defer signal.Stop(ch)
		sigs = ch
	}

	if err := proc.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %v", domain.ErrLaunchFailed, path, err)
	}

	exited := make(chan struct{})
	var g errgroup.Group

	g.Go(func() error {
		defer close(exited)
		return proc.Wait()
	})

	g.Go(func() error {
		cancelled := ctx.Done()
		for {
			select {
			case <-exited:
				return nil
			case sig, ok := <-sigs:
				if !ok {
					sigs = nil
					continue
				}
				forward(logger, proc.Process, sig)
			case <-cancelled:
				cancelled = nil
				forward(logger, proc.Process, terminateSignal)
			}
		}
	})

	err = g.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitCode(exitErr.ProcessState)}
	}
	return fmt.Errorf("wait for %s: %w", path, err)
}

func forward(logger *slog.Logger, p *os.Process, sig os.Signal) {
	logger.Debug("forwarding signal to server", slog.String("signal", sig.String()))
	if err := p.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logger.Debug("signal not delivered",
			slog.String("signal", sig.String()),
			slog.String("error", err.Error()),
		)
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
