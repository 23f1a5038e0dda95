package batchrepo

import (
	"context"
	"errors"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements ports.BatchRepository using GORM.
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GORM crop batch repository.
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Add saves a new crop batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.CropBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing crop batch. The write is conditional on the
// status the aggregate was loaded with; if another transaction moved the
// batch in the meantime, zero rows match and the update fails as an
// invalid transition instead of silently overwriting the newer state.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.CropBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionError("crop_batch",
			aggregate.PersistedStatus().String(), aggregate.Status().String())
	}

	return nil
}

// Get retrieves a crop batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.CropBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a crop batch by its tracking code.
func (r *GormBatchRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*batch.CropBatch, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
