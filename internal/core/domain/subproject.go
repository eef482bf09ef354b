package domain

import "go.trai.ch/zerr"

// SubprojectKind classifies what a subproject produces.
type SubprojectKind string

const (
	// KindBinary is an executable target.
	KindBinary SubprojectKind = "binary"
	// KindLibrary is a static or shared library target.
	KindLibrary SubprojectKind = "library"
	// KindHeaderOnly is a library consisting of headers alone.
	KindHeaderOnly SubprojectKind = "header-only"
)

// ParseSubprojectKind parses the textual form of a SubprojectKind.
func ParseSubprojectKind(s string) (SubprojectKind, error) {
	switch k := SubprojectKind(s); k {
	case KindBinary, KindLibrary, KindHeaderOnly:
		return k, nil
	}
	return "", zerr.With(ErrUnknownSubprojectKind, "kind", s)
}

// Linkable reports whether other subprojects may declare this kind as a
// dependency.
func (k SubprojectKind) Linkable() bool {
	return k == KindLibrary || k == KindHeaderOnly
}

// DependencyRef is one dependency reference declared by a subproject: either
// a bare name, or the detailed form carrying an import list.
type DependencyRef struct {
	Name    Spanned[string]
	Imports []string
	// Detailed distinguishes the detailed form from a bare name even when
	// the import list is empty.
	Detailed bool
}

// Subproject is one buildable unit of the project.
type Subproject struct {
	Name         Spanned[string]
	Kind         Spanned[SubprojectKind]
	SrcDir       *Spanned[string]
	IncludeDirs  []string
	Dependencies []DependencyRef
}
