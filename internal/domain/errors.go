package domain

import "errors"

// Sentinel errors for launch failures.
// Use errors.Is() for matching - never compare error strings.
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration value")

	// Launch errors
	ErrServerNotFound = errors.New("server executable not found")
	ErrLaunchFailed   = errors.New("server failed to start")
	ErrSessionsDir    = errors.New("cannot prepare sessions directory")
)

// ExitStatus is implemented by errors that carry the exit code of a
// finished server process.
type ExitStatus interface {
	error
	ExitCode() int
}

// ExitCode maps an error returned by the launcher to the process exit code.
// A server that ran and exited keeps its own code; a server that could not
// be found exits 127 like a shell would.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var status ExitStatus
	if errors.As(err, &status) {
		return status.ExitCode()
	}

	if errors.Is(err, ErrServerNotFound) {
		return ExitNotFound
	}
	return ExitFailure
}

// IsServerExit returns true if err only reports the exit status of a server
// that ran. The server has already written its own diagnostics in that case.
func IsServerExit(err error) bool {
	var status ExitStatus
	return errors.As(err, &status)
}
