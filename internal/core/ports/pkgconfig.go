package ports

import "context"

// PkgConfigProber checks dependency queries against the system's package
// discovery database.
//
//go:generate mockgen -source=pkgconfig.go -destination=mocks/mock_pkgconfig.go -package=mocks
type PkgConfigProber interface {
	// Exists returns nil when the query is satisfiable. Any error, whether
	// the probe could not run or exited non-zero, means the query failed.
	Exists(ctx context.Context, query string) error
}
