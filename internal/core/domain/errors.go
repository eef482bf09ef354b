package domain

import "go.trai.ch/zerr"

// ErrorKind tags a validation failure for the diagnostic renderer and for
// programmatic inspection. The tag set is closed.
type ErrorKind string

const (
	TomlParseError                 ErrorKind = "TomlParseError"
	IncorrectCompiler              ErrorKind = "IncorrectCompiler"
	UnsupportedCStandard           ErrorKind = "UnsupportedCStandard"
	DuplicateDependencySource      ErrorKind = "DuplicateDependencySource"
	DuplicateDependencyName        ErrorKind = "DuplicateDependencyName"
	DuplicateDependencyIncludeName ErrorKind = "DuplicateDependencyIncludeName"
	CustomBuildMissing             ErrorKind = "CustomBuildMissing"
	ExtraFieldNonCustomBuild       ErrorKind = "ExtraFieldNonCustomBuild"
	InvalidPkgConfigQuery          ErrorKind = "InvalidPkgConfigQuery"
	DuplicateSubprojectName        ErrorKind = "DuplicateSubprojectName"
	InvalidSubprojectDependency    ErrorKind = "InvalidSubprojectDependency"
	CircularDependency             ErrorKind = "CircularDependency"
	OverrideNameConflict           ErrorKind = "OverrideNameConflict"
	DuplicateCustomBuildRuleName   ErrorKind = "DuplicateCustomBuildRuleName"
)

// Label is a secondary source annotation on an Error, pointing at related
// text such as an earlier conflicting definition.
type Label struct {
	Span    Span
	Message string
}

// Error is a single validation failure. It carries everything the
// diagnostic renderer needs: the kind tag, a human-readable message, an
// optional primary span and an optional secondary label. The first Error
// found anywhere in the pipeline is final for that run.
type Error struct {
	Kind      ErrorKind
	Message   string
	Span      *Span
	Secondary *Label
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// WithSpan attaches the primary source span.
func (e *Error) WithSpan(span Span) *Error {
	e.Span = &span
	return e
}

// WithSecondary attaches a secondary annotation.
func (e *Error) WithSecondary(span Span, message string) *Error {
	e.Secondary = &Label{Span: span, Message: message}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrNodeAlreadyExists is returned when adding a graph node whose name
	// is already present.
	ErrNodeAlreadyExists = zerr.New("graph node already exists")

	// ErrUnknownNode is returned when traversal reaches a node that was
	// never added to the graph.
	ErrUnknownNode = zerr.New("unknown graph node")

	// ErrUnknownBuildMethod is returned for a build method outside the
	// supported set.
	ErrUnknownBuildMethod = zerr.New("unknown build method")

	// ErrUnknownSubprojectKind is returned for a subproject kind outside
	// the supported set.
	ErrUnknownSubprojectKind = zerr.New("unknown subproject kind")

	// ErrUnknownRebuildPolicy is returned for a rebuild policy outside the
	// supported set.
	ErrUnknownRebuildPolicy = zerr.New("unknown rebuild policy")
)
