//go:build !unix

package launch

import "os"

var forwardedSignals = []os.Signal{os.Interrupt}

// os.Process.Signal only supports Kill on these platforms.
var terminateSignal os.Signal = os.Kill

func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
