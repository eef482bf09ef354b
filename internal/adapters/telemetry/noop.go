// Package telemetry provides progress recording for the validation
// pipeline. The default implementation is the progrock subpackage; NoOp
// serves tests and quiet runs.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/forge/internal/core/ports"
)

var (
	_ ports.Telemetry = NoOp{}
	_ ports.Vertex    = NoOpVertex{}
)

// NoOp is a Telemetry implementation that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry sink.
func NewNoOp() NoOp {
	return NoOp{}
}

// Record returns a vertex that discards everything written to it.
func (NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return NoOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error {
	return nil
}

// NoOpVertex is a vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns a writer that discards all output.
func (NoOpVertex) Stdout() io.Writer {
	return io.Discard
}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}
