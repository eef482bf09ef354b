package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// BuildMethod selects how a remote dependency is built once fetched.
type BuildMethod string

const (
	// MethodDefault is the unset method; the dependency is built with the
	// project's own toolchain defaults.
	MethodDefault BuildMethod = ""
	// MethodHeaderOnly marks a dependency that needs no build at all.
	MethodHeaderOnly BuildMethod = "header-only"
	// MethodCMake delegates the dependency build to its CMake project.
	MethodCMake BuildMethod = "cmake"
	// MethodMeson delegates the dependency build to its Meson project.
	MethodMeson BuildMethod = "meson"
	// MethodForge builds the dependency as a nested forge project.
	MethodForge BuildMethod = "forge"
	// MethodCustom runs the entry's own build_command.
	MethodCustom BuildMethod = "custom"
)

// ParseBuildMethod parses the textual form of a BuildMethod.
func ParseBuildMethod(s string) (BuildMethod, error) {
	switch m := BuildMethod(s); m {
	case MethodHeaderOnly, MethodCMake, MethodMeson, MethodForge, MethodCustom:
		return m, nil
	}
	return MethodDefault, zerr.With(ErrUnknownBuildMethod, "method", s)
}

// Dependency is one declared external dependency of any category: remote,
// pkg-config, or manual. The set of implementations is closed.
type Dependency interface {
	isDependency()
}

// Remote is a dependency fetched from a source locator and built locally.
type Remote struct {
	Name        Spanned[string]
	Version     *Spanned[string]
	Source      Spanned[string]
	IncludeName *Spanned[string]
	IncludeDirs []string
	Method      Spanned[BuildMethod]
	// BuildCommand and BuildOutput are only meaningful for MethodCustom.
	BuildCommand *Spanned[string]
	BuildOutput  *Spanned[string]
	// Imports lists what the dependency exports to subprojects that
	// reference it in detailed form.
	Imports []string
	// EntrySpan covers the whole declaration, for diagnostics that cannot
	// point at a single field.
	EntrySpan Span
}

func (Remote) isDependency() {}

// PkgConfig is a dependency discovered through the system's pkg-config
// database rather than fetched.
type PkgConfig struct {
	Name  Spanned[string]
	Query Spanned[string]
}

func (PkgConfig) isDependency() {}

// Manual is a dependency wired in by hand through raw compiler and linker
// flags.
type Manual struct {
	Name          Spanned[string]
	CompilerFlags []string
	LinkerFlags   []string
}

func (Manual) isDependency() {}

// Dependencies owns the three dependency categories in declaration order.
type Dependencies struct {
	Remote    []Remote
	PkgConfig []PkgConfig
	Manual    []Manual
}

// All yields every dependency exactly once: remote entries first, then
// pkg-config, then manual, each category in declaration order. The view is
// read-only; iterating never mutates the collection.
func (d *Dependencies) All() iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, r := range d.Remote {
			if !yield(r) {
				return
			}
		}
		for _, p := range d.PkgConfig {
			if !yield(p) {
				return
			}
		}
		for _, m := range d.Manual {
			if !yield(m) {
				return
			}
		}
	}
}

// Has reports whether a dependency with the given name is declared in any
// category. It is a pure query and never consumes the collection.
func (d *Dependencies) Has(name string) bool {
	for _, r := range d.Remote {
		if r.Name.Value() == name {
			return true
		}
	}
	for _, p := range d.PkgConfig {
		if p.Name.Value() == name {
			return true
		}
	}
	for _, m := range d.Manual {
		if m.Name.Value() == name {
			return true
		}
	}
	return false
}

// Count returns the total number of declared dependencies.
func (d *Dependencies) Count() int {
	return len(d.Remote) + len(d.PkgConfig) + len(d.Manual)
}
