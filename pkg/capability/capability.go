// Package capability defines the port to the external reasoning service that
// backs every pipeline stage, plus the request vocabulary shared by its
// implementations.
//
// The pipeline treats the capability as opaque: one synchronous call per
// stage, free text or best-effort JSON back. Transport retries, if any,
// belong to the implementation, never to the pipeline's retry loop.
package capability

import "context"

// Request carries the per-stage prompt material.
type Request struct {
	// Stage is the node ID of the calling stage, for logging and routing
	// inside deterministic implementations.
	Stage string

	// System is the stage persona instruction.
	System string

	// User is the content built from the pipeline state.
	User string
}

// Client is the external capability interface. Implementations must be safe
// for concurrent use; one pipeline execution issues at most one call at a
// time.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Func adapts a plain function to the Client interface. Handy for stubs.
type Func func(ctx context.Context, req Request) (string, error)

// Complete implements Client.
func (f Func) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
