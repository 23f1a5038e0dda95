// Package ports defines the persistence and identity contracts between the
// application core and infrastructure adapters.
package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for crop batch aggregates.
type BatchRepository interface {
	// Add persists a new crop batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.CropBatch) error

	// Update persists changes to an existing crop batch. The write is
	// conditional on the status the aggregate was loaded with, so a
	// concurrent transition on the same batch fails instead of being
	// silently overwritten.
	Update(ctx context.Context, aggregate *batch.CropBatch) error

	// Get retrieves a crop batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.CropBatch, error)

	// GetByTrackingCode retrieves a crop batch by its tracking code.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*batch.CropBatch, error)
}
