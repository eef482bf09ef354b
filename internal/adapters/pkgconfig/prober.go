// Package pkgconfig implements the package-discovery prober on the system's
// pkg-config binary.
package pkgconfig

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

const binary = "pkg-config"

var _ ports.PkgConfigProber = (*Prober)(nil)

// Prober implements ports.PkgConfigProber by spawning pkg-config once per
// query.
type Prober struct {
	logger ports.Logger
}

// NewProber creates a new Prober.
func NewProber(logger ports.Logger) *Prober {
	return &Prober{
		logger: logger,
	}
}

// Exists runs `pkg-config --exists` with the query. A nil return means the
// query is satisfiable on this system.
func (p *Prober) Exists(ctx context.Context, query string) error {
	p.logger.Info(fmt.Sprintf("probing pkg-config query %q", query))

	cmd := exec.CommandContext(ctx, binary, "--exists", query)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "pkg-config query failed"),
			"exit_code", exitCode),
			"stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}
