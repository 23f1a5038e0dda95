package staffrepo

import (
	"context"
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetActor retrieves a staff profile by its user identifier.
func (r *GormStaffRepository) GetActor(ctx context.Context, id kernel.UUID) (staff.Actor, error) {
	if err := id.Validate(); err != nil {
		return staff.Actor{}, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Actor{}, errs.NewObjectNotFoundError("actorId", id.String())
		}
		return staff.Actor{}, err
	}

	return actorToDomain(dto)
}

// GetActiveByRole retrieves all active staff holding the given role.
func (r *GormStaffRepository) GetActiveByRole(ctx context.Context, role staff.Role) ([]staff.Actor, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []StaffDTO
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", int(role), true).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return actorsToDomain(dtos)
}

// GetActiveManagersByWarehouse retrieves the active warehouse managers
// scoped to one warehouse.
func (r *GormStaffRepository) GetActiveManagersByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]staff.Actor, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StaffDTO
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ? AND warehouse_id = ?",
			int(staff.WarehouseManager), true, warehouseID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return actorsToDomain(dtos)
}

// GetWarehouse retrieves a warehouse by ID.
func (r *GormStaffRepository) GetWarehouse(ctx context.Context, id kernel.UUID) (*staff.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouseId", id.String())
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

func actorsToDomain(dtos []StaffDTO) ([]staff.Actor, error) {
	actors := make([]staff.Actor, 0, len(dtos))
	for _, dto := range dtos {
		actor, err := actorToDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
	}
	return actors, nil
}
