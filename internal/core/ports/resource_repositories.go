package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
)

// DriverRepository defines the persistence contract for driver resources.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *resource.Driver) error

	// Update persists a driver's status change, conditional on the status
	// the driver was loaded with.
	Update(ctx context.Context, aggregate *resource.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*resource.Driver, error)
}

// VehicleRepository defines the persistence contract for vehicle resources.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *resource.Vehicle) error

	// Update persists a vehicle's status change, conditional on the status
	// the vehicle was loaded with.
	Update(ctx context.Context, aggregate *resource.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*resource.Vehicle, error)
}
