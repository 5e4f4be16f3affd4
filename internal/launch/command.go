package launch

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/aelexs/bridge-launcher/internal/config"
	"github.com/aelexs/bridge-launcher/internal/domain"
)

// Command is a fully resolved server invocation.
type Command struct {
	Path string   // Executable name or path, resolved through PATH at run time
	Args []string // Full argv; Args[0] is the server name
	Env  []string // Environment handed to the server
	Port string   // Resolved port, as passed on the command line
}

// NewCommand builds the server invocation for cfg. The host and application
// target are fixed; the port is the resolved PORT value, unvalidated.
func NewCommand(cfg *config.Config, environ []string) Command {
	port := config.ResolvePort(cfg.Port)

	server := cfg.Server
	if server == "" {
		server = domain.DefaultServer
	}

	return Command{
		Path: server,
		Args: []string{server, domain.AppTarget, "--host", domain.BindHost, "--port", port},
		Env:  setEnv(environ, domain.PortEnv, port),
		Port: port,
	}
}

// setEnv returns a copy of environ with every entry for name replaced by a
// single name=value entry at the end.
func setEnv(environ []string, name, value string) []string {
	prefix := name + "="
	out := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+value)
}

// lookPath resolves the server executable the way a shell would.
func lookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrServerNotFound, name, err)
	}
	return path, nil
}
