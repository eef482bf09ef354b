// export_test.go exposes private error formatting helpers for white-box testing.
package logger

// ErrorEntry re-exports errorEntry for test assertions.
type ErrorEntry = errorEntry

var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
