// Package launch starts the ASGI server that serves the bridge application.
//
// A launch resolves the listening port, prepares the sessions directory,
// writes one startup line, and hands the process over to a Runner. The
// default Runner replaces the launcher's process image, so the server keeps
// the container's PID, its signals and its exit status.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aelexs/bridge-launcher/internal/config"
	"github.com/aelexs/bridge-launcher/internal/domain"
	"github.com/aelexs/bridge-launcher/internal/observability"
)

// Runner starts a server command. Implementations that replace the current
// process never return on success.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Launcher performs a single launch.
type Launcher struct {
	cfg     *config.Config
	logger  *slog.Logger
	runner  Runner
	environ []string
}

// New creates a Launcher. environ is the environment the server inherits.
func New(cfg *config.Config, logger *slog.Logger, runner Runner, environ []string) *Launcher {
	return &Launcher{
		cfg:     cfg,
		logger:  logger,
		runner:  runner,
		environ: environ,
	}
}

// Launch starts the server. Errors from the runner are returned unchanged
// so the caller can map them to an exit code.
func (l *Launcher) Launch(ctx context.Context) error {
	if err := prepareSessionsDir(l.cfg.SessionsDir); err != nil {
		return err
	}

	cmd := NewCommand(l.cfg, l.environ)

	l.logger.Info("starting server",
		slog.String("port", cmd.Port),
		slog.String("host", domain.BindHost),
		slog.String("app", domain.AppTarget),
		slog.String("server", cmd.Path),
	)
	l.logger.Debug("server command",
		slog.String("mode", l.cfg.Mode),
		slog.Any("args", cmd.Args),
		slog.Any("env", observability.RedactEnv(cmd.Env)),
	)

	return l.runner.Run(ctx, cmd)
}

func prepareSessionsDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, domain.SessionsDirPerm); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionsDir, err)
	}
	return nil
}
