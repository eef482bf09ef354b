package domain

// BuildConfig is the aggregate root for one loaded project description. It
// exclusively owns all child collections; validators borrow read-only views
// and cross-entity lookups go through names, never back-references.
//
// A BuildConfig is created once per invocation and never mutated afterwards,
// with one exception: successful validation replaces the subproject order
// with the computed build order.
type BuildConfig struct {
	Settings     BuildSettings
	Dependencies Dependencies
	Subprojects  []Subproject
	Overrides    []Override
	Rules        []CustomBuildRule

	// Source is the raw configuration text every Span indexes into. The
	// diagnostic renderer slices context lines from it; validation never
	// re-reads it.
	Source []byte
	// Fingerprint is the xxhash of Source in fixed-width hex.
	Fingerprint string
}
