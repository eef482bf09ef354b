// Package verify implements the configuration verification pipeline:
// toolchain probing, dependency checks, subproject graph resolution, and
// the override and custom-build-rule validators.
package verify

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// previouslyDefined annotates the earlier declaration in duplicate
// diagnostics.
const previouslyDefined = "Previously defined here"

// Verifier runs the verification pipeline over a loaded configuration.
//
// The pipeline is synchronous and fails fast: phases run in a fixed order
// and the first error is final for the run. The only external effects are
// the toolchain and pkg-config probes.
type Verifier struct {
	toolchain ports.ToolchainProber
	pkgconfig ports.PkgConfigProber
	log       ports.Logger
	telemetry ports.Telemetry
}

// NewVerifier creates a Verifier with the given probers, logger and
// telemetry sink.
func NewVerifier(
	toolchain ports.ToolchainProber,
	pkgconfig ports.PkgConfigProber,
	log ports.Logger,
	telemetry ports.Telemetry,
) *Verifier {
	return &Verifier{
		toolchain: toolchain,
		pkgconfig: pkgconfig,
		log:       log,
		telemetry: telemetry,
	}
}

// VerifyConfig runs every verification phase against cfg, recording one
// telemetry vertex per phase: settings, dependencies, subprojects,
// overrides, build rules. On success the subprojects are permuted into
// build order; on failure cfg is left untouched and the first error is
// returned.
func (v *Verifier) VerifyConfig(ctx context.Context, cfg *domain.BuildConfig) *domain.Error {
	if err := v.phase(ctx, "verify settings", func(vtx ports.Vertex) *domain.Error {
		return v.verifySettings(ctx, vtx, cfg.Settings)
	}); err != nil {
		return err
	}

	if err := v.phase(ctx, "verify dependencies", func(ports.Vertex) *domain.Error {
		return v.verifyDependencies(ctx, &cfg.Dependencies)
	}); err != nil {
		return err
	}

	var ordered []domain.Subproject
	if err := v.phase(ctx, "resolve subprojects", func(vtx ports.Vertex) *domain.Error {
		var perr *domain.Error
		ordered, perr = v.resolveSubprojects(vtx, cfg.Subprojects, &cfg.Dependencies)
		return perr
	}); err != nil {
		return err
	}

	if err := v.phase(ctx, "verify overrides", func(ports.Vertex) *domain.Error {
		return v.verifyOverrides(cfg.Overrides, cfg.Subprojects)
	}); err != nil {
		return err
	}

	if err := v.phase(ctx, "verify build rules", func(ports.Vertex) *domain.Error {
		return v.verifyRules(cfg.Rules)
	}); err != nil {
		return err
	}

	cfg.Subprojects = ordered
	v.log.Info(fmt.Sprintf("verified configuration: %d subprojects in build order", len(ordered)))
	return nil
}

// phase records one telemetry vertex around a single pipeline step.
func (v *Verifier) phase(ctx context.Context, name string, run func(ports.Vertex) *domain.Error) *domain.Error {
	vtx := v.telemetry.Record(ctx, name)
	if err := run(vtx); err != nil {
		vtx.Complete(err)
		return err
	}
	vtx.Complete(nil)
	return nil
}
