// Package cc implements the toolchain prober on the host's C compiler.
package cc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainProber = (*Prober)(nil)

// Prober implements ports.ToolchainProber by spawning the configured
// compiler. Each probe is a fresh process; nothing is cached between calls.
type Prober struct {
	logger ports.Logger
}

// NewProber creates a new Prober.
func NewProber(logger ports.Logger) *Prober {
	return &Prober{
		logger: logger,
	}
}

// ResolveCompiler resolves the compiler name to an executable path using
// the system search path.
func (p *Prober) ResolveCompiler(_ context.Context, compiler string) (string, error) {
	path, err := exec.LookPath(compiler)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "compiler not found"), "compiler", compiler)
	}
	p.logger.Info(fmt.Sprintf("resolved compiler %s to %s", compiler, path))
	return path, nil
}

// ProbeStandard compiles an empty translation unit from stdin with the
// requested language standard, discarding the object output.
func (p *Prober) ProbeStandard(ctx context.Context, compilerPath, standard string) error {
	p.logger.Info(fmt.Sprintf("probing %s with -std=%s", compilerPath, standard))

	//nolint:gosec // compilerPath was resolved from the validated settings
	cmd := exec.CommandContext(ctx, compilerPath,
		"-std="+standard, "-o", os.DevNull, "-x", "c", "-c", "-")
	cmd.Stdin = strings.NewReader("")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "standard probe failed"),
			"exit_code", exitCode),
			"stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}
