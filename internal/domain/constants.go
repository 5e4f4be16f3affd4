package domain

// Launch contract. The host and application target are fixed; only the
// port and the server executable come from the environment.
const (
	DefaultPort        = "8001"         // Used when PORT is unset or empty
	BindHost           = "0.0.0.0"      // Server binds on all interfaces
	AppTarget          = "app.main:app" // ASGI application object
	DefaultServer      = "uvicorn"      // ASGI server executable
	DefaultSessionsDir = "sessions"     // Created before launch for session files
	SessionsDirPerm    = 0o755

	// PortEnv is the only environment variable the launched server is
	// guaranteed to see rewritten.
	PortEnv = "PORT"
)

// Launch modes.
const (
	ModeExec  = "exec"  // Replace the launcher process image
	ModeChild = "child" // Run the server as a child and mirror its exit status
)

// Process exit codes, following shell conventions.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitNotFound   = 127 // Command not found
	ExitSignalBase = 128 // Child killed by signal N exits with 128+N
)

// IsValidMode returns true if mode names a supported launch mode.
func IsValidMode(mode string) bool {
	return mode == ModeExec || mode == ModeChild
}
