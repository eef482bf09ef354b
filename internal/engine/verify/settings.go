package verify

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// verifySettings resolves the configured compiler on the system search path
// and probes it for the requested language standard. Each check spawns one
// process; there are no retries.
func (v *Verifier) verifySettings(ctx context.Context, vtx ports.Vertex, settings domain.BuildSettings) *domain.Error {
	path, err := v.toolchain.ResolveCompiler(ctx, settings.Compiler.Value())
	if err != nil {
		return domain.NewError(domain.IncorrectCompiler, "Compiler not in path").
			WithSpan(settings.Compiler.Span())
	}
	fmt.Fprintf(vtx.Stdout(), "compiler %s\n", path)

	if err := v.toolchain.ProbeStandard(ctx, path, settings.CStandard.Value()); err != nil {
		return domain.NewError(domain.UnsupportedCStandard, "Unsupported C standard").
			WithSpan(settings.CStandard.Span())
	}
	fmt.Fprintf(vtx.Stdout(), "standard %s\n", settings.CStandard.Value())
	return nil
}
