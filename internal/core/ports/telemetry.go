package ports

import (
	"context"
	"io"
)

// Telemetry records the progress of validation phases for later inspection
// or rendering. Implementations must be safe for sequential use; the
// pipeline records one vertex per phase.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex with the given name.
	Record(ctx context.Context, name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of pipeline progress.
type Vertex interface {
	// Stdout returns a writer capturing the vertex's output stream.
	Stdout() io.Writer
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because its result was already
	// known.
	Cached()
}
