package domain

// BuildSettings is the global toolchain configuration of a project.
// It is constructed once at load time and read-only afterwards.
type BuildSettings struct {
	Compiler  Spanned[string]
	CStandard Spanned[string]
	Version   string
	Flags     []string
	// Jobs is the parallelism hint for downstream build execution. Zero
	// means unset.
	Jobs int
}
