package ports

import (
	"context"
	"iter"
)

// Watcher signals changes to a watched configuration file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the file at the given path. Events are
	// coalesced; rapid successive writes produce a single change.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes returns an iterator yielding the watched path once per
	// coalesced change. The sequence ends when the watcher stops or its
	// context is canceled.
	Changes() iter.Seq[string]
}
