package resourcerepo

import (
	"context"
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *resource.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a vehicle's status change, conditional on the status the
// vehicle was loaded with.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *resource.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewSchedulingConflictError("vehicle", aggregate.ID().String(), "")
	}

	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*resource.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleId", id.String())
		}
		return nil, err
	}

	return vehicleToDomain(dto)
}
