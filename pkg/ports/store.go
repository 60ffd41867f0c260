// Package ports defines the interfaces between the pipeline core and its
// adapters (storage backends, transports).
package ports

import (
	"context"

	"github.com/nithin218/mindmate/pkg/domain"
)

// RecordStore persists execution records for audit and inspection.
//
// Records are append-only snapshots of finished executions; the store is
// never consulted by a running pipeline.
type RecordStore interface {
	// Save persists a record under its ID.
	Save(ctx context.Context, record *domain.Record) error

	// Load retrieves a record by ID.
	// Returns domain.ErrRecordNotFound if the record does not exist.
	Load(ctx context.Context, id string) (*domain.Record, error)

	// List returns the IDs of all stored records.
	List(ctx context.Context) ([]string, error)
}
