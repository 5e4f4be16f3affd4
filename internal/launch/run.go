package launch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aelexs/bridge-launcher/internal/config"
	"github.com/aelexs/bridge-launcher/internal/domain"
	"github.com/aelexs/bridge-launcher/internal/observability"
)

// Params configures a launcher run.
type Params struct {
	// Name identifies the launcher in log output.
	Name string

	// Runner overrides the runner selected by the configured mode.
	Runner Runner

	// LogOutput defaults to os.Stdout.
	LogOutput io.Writer

	// Environ defaults to os.Environ().
	Environ []string
}

// Run executes the whole launch: config loading, logger initialization and
// the hand-off to the server. In exec mode it only returns on failure.
func Run(ctx context.Context, p Params) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: p.Name,
		Environment: cfg.Environment,
		Output:      p.LogOutput,
	})

	runner := p.Runner
	if runner == nil {
		runner = RunnerFor(cfg.Mode, logger)
	}

	environ := p.Environ
	if environ == nil {
		environ = os.Environ()
	}

	return New(cfg, logger, runner, environ).Launch(ctx)
}

// RunnerFor returns the runner for a launch mode. Unknown modes fall back
// to exec; config.Load rejects them before this point.
func RunnerFor(mode string, logger *slog.Logger) Runner {
	if mode == domain.ModeChild {
		return &ChildRunner{Logger: logger}
	}
	return NewExecRunner()
}
