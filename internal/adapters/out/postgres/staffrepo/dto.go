// Package staffrepo reads staff profiles and warehouses. Profiles are
// reference data managed outside the workflow, so the repository exposes no
// writes; it also backs token resolution for the HTTP layer.
package staffrepo

import (
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO is the database row for one staff profile.
type StaffDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role        int       `gorm:"index"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	Active      bool
	Token       string `gorm:"uniqueIndex;size:64"`
}

// TableName overrides GORM's default naming to use "staff".
func (StaffDTO) TableName() string {
	return "staff"
}

// WarehouseDTO is the database row for a warehouse.
type WarehouseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Location   string
	CapacityKg float64
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func actorToDomain(dto StaffDTO) (staff.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return staff.Actor{}, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if wErr != nil {
			return staff.Actor{}, wErr
		}
		warehouseID = &wID
	}

	return staff.NewActor(id, staff.Role(dto.Role), warehouseID, dto.Active)
}

func warehouseToDomain(dto WarehouseDTO) (*staff.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return staff.NewWarehouse(id, dto.Name, dto.Location, dto.CapacityKg)
}
