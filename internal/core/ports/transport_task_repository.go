package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"
)

// TransportTaskRepository defines the persistence contract for transport
// tasks and the issues reported against them.
type TransportTaskRepository interface {
	// Add persists a new transport task.
	Add(ctx context.Context, aggregate *transport.TransportTask) error

	// Update persists changes to an existing task. Like batch updates, the
	// write is conditional on the status the task was loaded with.
	Update(ctx context.Context, aggregate *transport.TransportTask) error

	// Get retrieves a transport task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transport.TransportTask, error)

	// GetActiveByBatch retrieves the batch's tasks in Scheduled, InTransit
	// or Delayed status. A batch may hold at most one, but the contract
	// returns a slice so the caller detects violations instead of masking them.
	GetActiveByBatch(ctx context.Context, batchID kernel.UUID) ([]*transport.TransportTask, error)

	// GetActiveByDriver retrieves the driver's active tasks across all dates.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*transport.TransportTask, error)

	// GetActiveByVehicle retrieves the vehicle's active tasks across all dates.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*transport.TransportTask, error)

	// AddIssue persists a new issue report for a task.
	AddIssue(ctx context.Context, issue *transport.TransportIssue) error

	// UpdateIssue persists changes to an existing issue report.
	UpdateIssue(ctx context.Context, issue *transport.TransportIssue) error

	// GetIssue retrieves an issue report by its unique identifier.
	GetIssue(ctx context.Context, id kernel.UUID) (*transport.TransportIssue, error)
}
