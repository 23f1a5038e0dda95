package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
)

// StaffRepository resolves actors and notification recipients. Staff profiles
// are reference data managed outside the workflow, so there is no Add/Update.
type StaffRepository interface {
	// GetActor retrieves a staff profile by its user identifier.
	GetActor(ctx context.Context, id kernel.UUID) (staff.Actor, error)

	// GetActiveByRole retrieves all active staff holding the given role.
	// Used to resolve notification recipients for role-wide events.
	GetActiveByRole(ctx context.Context, role staff.Role) ([]staff.Actor, error)

	// GetActiveManagersByWarehouse retrieves the active warehouse managers
	// scoped to one warehouse. Used to notify the destination of a shipment.
	GetActiveManagersByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]staff.Actor, error)

	// GetWarehouse retrieves a warehouse by its unique identifier.
	GetWarehouse(ctx context.Context, id kernel.UUID) (*staff.Warehouse, error)
}
