// Package main is the entry point for the forge build tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/app"
	_ "go.trai.ch/forge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, app.ErrVerificationFailed) {
			// The diagnostic has already been rendered.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
