package staff

import (
	"errors"
	"fmt"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse was not created
// via NewWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse")

// Warehouse is a storage destination for crop batches. Procurement assigns
// one to a batch before shipping; its managers are the role-scoped recipients
// of shipment notifications.
type Warehouse struct {
	id         kernel.UUID
	name       string
	location   string
	capacityKg float64

	guard guard.ConstructorGuard
}

// NewWarehouse creates a warehouse.
func NewWarehouse(id kernel.UUID, name, location string, capacityKg float64) (*Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if capacityKg <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacityKg",
			fmt.Errorf("%v is not greater than 0", capacityKg))
	}

	return &Warehouse{
		id:         id,
		name:       name,
		location:   location,
		capacityKg: capacityKg,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the warehouse was built through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// Name returns the warehouse display name.
func (w *Warehouse) Name() string { return w.name }

// Location returns the warehouse address or site description.
func (w *Warehouse) Location() string { return w.location }

// CapacityKg returns the storage capacity in kilograms.
func (w *Warehouse) CapacityKg() float64 { return w.capacityKg }
