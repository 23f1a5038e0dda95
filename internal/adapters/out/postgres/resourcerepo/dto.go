// Package resourcerepo persists drivers and vehicles. Both resources carry a
// single status column; updates are conditional on the status the resource
// was loaded with so concurrent bookings fail instead of double-committing.
package resourcerepo

import (
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a driver resource.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	LicenseNo string `gorm:"size:32"`
	Status    int    `gorm:"index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO is the database row for a vehicle resource.
type VehicleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNo    string    `gorm:"uniqueIndex;size:16"`
	Kind       string
	CapacityKg float64
	Status     int `gorm:"index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func driverFromDomain(aggregate *resource.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		LicenseNo: aggregate.LicenseNo(),
		Status:    int(aggregate.Status()),
	}
}

func driverToDomain(dto DriverDTO) (*resource.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return resource.RestoreDriver(id, dto.Name, dto.Phone, dto.LicenseNo,
		resource.DriverStatus(dto.Status))
}

func vehicleFromDomain(aggregate *resource.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:         aggregate.ID().Bytes(),
		PlateNo:    aggregate.PlateNo(),
		Kind:       aggregate.Kind(),
		CapacityKg: aggregate.CapacityKg(),
		Status:     int(aggregate.Status()),
	}
}

func vehicleToDomain(dto VehicleDTO) (*resource.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return resource.RestoreVehicle(id, dto.PlateNo, dto.Kind, dto.CapacityKg,
		resource.VehicleStatus(dto.Status))
}
