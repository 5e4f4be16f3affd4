// Package main is the container entrypoint for the Telegram Bridge.
// It resolves PORT and replaces itself with the ASGI server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aelexs/bridge-launcher/internal/domain"
	"github.com/aelexs/bridge-launcher/internal/launch"
)

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil && !domain.IsServerExit(err) {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	}
	os.Exit(domain.ExitCode(err))
}

func run(ctx context.Context) error {
	return launch.Run(ctx, launch.Params{Name: "launcher"})
}
