// Package ports defines the core interfaces for the application.
package ports

import "context"

// ToolchainProber probes the host toolchain declared in the build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainProber interface {
	// ResolveCompiler resolves the compiler name to an executable path via
	// the system search path.
	ResolveCompiler(ctx context.Context, compiler string) (string, error)
	// ProbeStandard compiles an empty translation unit with the given
	// language standard, discarding all output. A nil return means the
	// toolchain accepts the standard.
	ProbeStandard(ctx context.Context, compilerPath, standard string) error
}
