//go:build unix

package launch

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/aelexs/bridge-launcher/internal/domain"
)

// forwardedSignals are relayed from the launcher to a child server.
var forwardedSignals = []os.Signal{
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGHUP,
	unix.SIGQUIT,
	unix.SIGUSR1,
	unix.SIGUSR2,
}

// terminateSignal is sent to a child server when the launch is cancelled.
var terminateSignal os.Signal = unix.SIGTERM

// exitCode reports a signalled child as 128+N.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return domain.ExitSignalBase + int(ws.Signal())
	}
	return state.ExitCode()
}
