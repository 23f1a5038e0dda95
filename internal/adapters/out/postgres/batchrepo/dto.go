// Package batchrepo persists crop batch aggregates with GORM. It maps the
// aggregate to a flat row and applies status-conditional updates so that
// concurrent transitions on the same batch cannot overwrite each other.
package batchrepo

import (
	"time"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO is the database row for a crop batch aggregate.
type BatchDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode    string    `gorm:"uniqueIndex;size:32"`
	CropType        string
	Variety         string
	QuantityKg      float64
	Status          int `gorm:"index"`
	FarmerID        uuid.UUID
	WarehouseID     *uuid.UUID `gorm:"type:uuid;index"`
	PlantedAt       time.Time
	ExpectedHarvest time.Time
	ActualHarvest   *time.Time
	Notes           string
}

// TableName overrides GORM's default naming to use "crop_batches".
func (BatchDTO) TableName() string {
	return "crop_batches"
}

func fromDomain(aggregate *batch.CropBatch) BatchDTO {
	var warehouseID *uuid.UUID
	if id := aggregate.WarehouseID(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	return BatchDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode().String(),
		CropType:        aggregate.CropType(),
		Variety:         aggregate.Variety(),
		QuantityKg:      aggregate.QuantityKg(),
		Status:          int(aggregate.Status()),
		FarmerID:        aggregate.FarmerID().Bytes(),
		WarehouseID:     warehouseID,
		PlantedAt:       aggregate.PlantedAt(),
		ExpectedHarvest: aggregate.ExpectedHarvest(),
		ActualHarvest:   aggregate.ActualHarvest(),
		Notes:           aggregate.Notes(),
	}
}

func toDomain(dto BatchDTO) (*batch.CropBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if wErr != nil {
			return nil, wErr
		}
		warehouseID = &wID
	}

	return batch.RestoreCropBatch(
		id, code, dto.CropType, dto.Variety, dto.QuantityKg,
		batch.Status(dto.Status), farmerID, warehouseID,
		dto.PlantedAt, dto.ExpectedHarvest, dto.ActualHarvest, dto.Notes,
	)
}
