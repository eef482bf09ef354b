package verify

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// sourceKey is the composite uniqueness key for remote dependencies. Two
// entries may share a source as long as they pin different versions; an
// entry without a version never collides with a pinned one.
type sourceKey struct {
	source     string
	version    string
	hasVersion bool
}

// verifyDependencies checks every declared dependency exactly once, in
// declaration order: remote entries first, then pkg-config, then manual.
// Names share one uniqueness set across all three categories.
func (v *Verifier) verifyDependencies(ctx context.Context, deps *domain.Dependencies) *domain.Error {
	names := make(map[string]domain.Span, deps.Count())
	sources := make(map[sourceKey]domain.Span, len(deps.Remote))
	includeNames := make(map[string]domain.Span, len(deps.Remote))

	for dep := range deps.All() {
		switch d := dep.(type) {
		case domain.Remote:
			if err := checkRemote(d, names, sources, includeNames); err != nil {
				return err
			}
		case domain.PkgConfig:
			if err := claimName(names, d.Name); err != nil {
				return err
			}
			if err := v.pkgconfig.Exists(ctx, d.Query.Value()); err != nil {
				return domain.NewError(domain.InvalidPkgConfigQuery, "Pkg-config dependency not found").
					WithSpan(d.Query.Span())
			}
		case domain.Manual:
			if err := claimName(names, d.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkRemote validates one remote entry: source uniqueness, then the
// shared name set, then include-name uniqueness, then the build-method
// field rules.
func checkRemote(
	r domain.Remote,
	names map[string]domain.Span,
	sources map[sourceKey]domain.Span,
	includeNames map[string]domain.Span,
) *domain.Error {
	key := sourceKey{source: r.Source.Value()}
	if r.Version != nil {
		key.version = r.Version.Value()
		key.hasVersion = true
	}
	if prev, ok := sources[key]; ok {
		return domain.NewError(domain.DuplicateDependencySource, "Duplicate dependency url with same versions").
			WithSpan(r.Source.Span()).
			WithSecondary(prev, previouslyDefined)
	}
	sources[key] = r.Source.Span()

	if err := claimName(names, r.Name); err != nil {
		return err
	}

	if r.IncludeName != nil {
		if prev, ok := includeNames[r.IncludeName.Value()]; ok {
			return domain.NewError(domain.DuplicateDependencyIncludeName, "Duplicate dependency include name").
				WithSpan(r.IncludeName.Span()).
				WithSecondary(prev, previouslyDefined)
		}
		includeNames[r.IncludeName.Value()] = r.IncludeName.Span()
	}

	return checkMethodFields(r)
}

// checkMethodFields enforces the coupling between the build method and the
// custom-build fields: custom requires build_command, every other method
// forbids both build_command and build_output.
func checkMethodFields(r domain.Remote) *domain.Error {
	if r.Method.Value() == domain.MethodCustom {
		if r.BuildCommand == nil {
			return domain.NewError(domain.CustomBuildMissing, "Custom build method missing build_command").
				WithSpan(r.EntrySpan)
		}
		return nil
	}
	if r.BuildOutput != nil {
		return domain.NewError(domain.ExtraFieldNonCustomBuild, "Non-custom build method has build_output").
			WithSpan(r.BuildOutput.Span())
	}
	if r.BuildCommand != nil {
		return domain.NewError(domain.ExtraFieldNonCustomBuild, "Non-custom build method has build_command").
			WithSpan(r.BuildCommand.Span())
	}
	return nil
}

// claimName records a dependency name in the shared set, failing when any
// category already claimed it.
func claimName(names map[string]domain.Span, name domain.Spanned[string]) *domain.Error {
	if prev, ok := names[name.Value()]; ok {
		return domain.NewError(domain.DuplicateDependencyName, "Duplicate dependency name").
			WithSpan(name.Span()).
			WithSecondary(prev, previouslyDefined)
	}
	names[name.Value()] = name.Span()
	return nil
}
