package batch

import (
	"errors"
	"fmt"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrCropBatchIsNotConstructed is returned when a CropBatch instance was not
// created through NewCropBatch or RestoreCropBatch.
var ErrCropBatchIsNotConstructed = errors.New(
	"CropBatch must be created via NewCropBatch or RestoreCropBatch")

// CropBatch is the aggregate root tracking one unit of produce through the
// supply chain, from field registration to warehouse storage.
//
// Invariants:
//   - status only moves along the transition table in status.go
//   - a batch never ships without a destination warehouse
//   - actualHarvest is stamped exactly once, on entering Harvested
//   - the tracking code is immutable after construction
//
// The struct uses private fields; state changes go through ChangeStatus and
// AssignWarehouse, which enforce the invariants. The aggregate also remembers
// the status it was restored with (see PersistedStatus), which the repository
// uses for conditional updates so that two concurrent writers cannot both
// apply a transition from the same observed status.
type CropBatch struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode
	cropType     string
	variety      string
	quantityKg   float64
	status       Status
	farmerID     kernel.UUID
	warehouseID  *kernel.UUID
	plantedAt    time.Time
	// expectedHarvest is the field stage's estimate; informational only.
	expectedHarvest time.Time
	actualHarvest   *time.Time
	notes           string

	// persistedStatus is the status observed when the aggregate was loaded.
	// Zero (Unknown) for freshly created batches.
	persistedStatus Status

	guard guard.ConstructorGuard
}

// NewCropBatch creates a batch in Planted status. This is the field-collection
// entry point of the workflow.
func NewCropBatch(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	cropType string,
	variety string,
	quantityKg float64,
	farmerID kernel.UUID,
	plantedAt time.Time,
	expectedHarvest time.Time,
) (*CropBatch, error) {
	b := &CropBatch{
		status:          Planted,
		plantedAt:       plantedAt,
		expectedHarvest: expectedHarvest,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTrackingCode(trackingCode),
		b.setCropType(cropType),
		b.setVariety(variety),
		b.setQuantityKg(quantityKg),
		b.setFarmerID(farmerID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreCropBatch reconstructs a batch from persistence, preserving its
// stored status and timestamps. The restored status is also recorded as the
// aggregate's persisted status for later conditional updates.
func RestoreCropBatch(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	cropType string,
	variety string,
	quantityKg float64,
	status Status,
	farmerID kernel.UUID,
	warehouseID *kernel.UUID,
	plantedAt time.Time,
	expectedHarvest time.Time,
	actualHarvest *time.Time,
	notes string,
) (*CropBatch, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	b := &CropBatch{
		status:          status,
		persistedStatus: status,
		warehouseID:     warehouseID,
		plantedAt:       plantedAt,
		expectedHarvest: expectedHarvest,
		actualHarvest:   actualHarvest,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTrackingCode(trackingCode),
		b.setCropType(cropType),
		b.setVariety(variety),
		b.setQuantityKg(quantityKg),
		b.setFarmerID(farmerID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the batch was built through a constructor.
func (b *CropBatch) Validate() error {
	if b == nil {
		return ErrCropBatchIsNotConstructed
	}
	return b.guard.Validate(ErrCropBatchIsNotConstructed)
}

// IsEqual compares two batches by identifier.
func (b *CropBatch) IsEqual(other *CropBatch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *CropBatch) ID() kernel.UUID { return b.id }

// TrackingCode returns the canonical label code of the batch.
func (b *CropBatch) TrackingCode() kernel.TrackingCode { return b.trackingCode }

// CropType returns the crop type, e.g. "Coffee".
func (b *CropBatch) CropType() string { return b.cropType }

// Variety returns the crop variety, e.g. "Arabica".
func (b *CropBatch) Variety() string { return b.variety }

// QuantityKg returns the batch quantity in kilograms.
func (b *CropBatch) QuantityKg() float64 { return b.quantityKg }

// Status returns the current lifecycle status.
func (b *CropBatch) Status() Status { return b.status }

// FarmerID returns the owning farmer.
func (b *CropBatch) FarmerID() kernel.UUID { return b.farmerID }

// WarehouseID returns the destination warehouse, or nil before procurement
// assigns one.
func (b *CropBatch) WarehouseID() *kernel.UUID { return b.warehouseID }

// PlantedAt returns the field registration time.
func (b *CropBatch) PlantedAt() time.Time { return b.plantedAt }

// ExpectedHarvest returns the estimated harvest time.
func (b *CropBatch) ExpectedHarvest() time.Time { return b.expectedHarvest }

// ActualHarvest returns the harvest timestamp, or nil before Harvested.
func (b *CropBatch) ActualHarvest() *time.Time { return b.actualHarvest }

// Notes returns free-form notes attached by the last status change.
func (b *CropBatch) Notes() string { return b.notes }

// PersistedStatus returns the status the aggregate was loaded with, used by
// the repository as the compare value of its conditional update. Returns
// Unknown for batches that have not been persisted yet.
func (b *CropBatch) PersistedStatus() Status { return b.persistedStatus }

// ChangeStatus moves the batch to target at the given time.
//
// Fails with:
//   - InvalidTransitionError if target is not a direct successor,
//   - MissingPrerequisiteError if target is Shipped and no destination
//     warehouse has been assigned.
//
// Side effects: entering Harvested stamps actualHarvest; notes replace the
// previous notes when non-empty.
func (b *CropBatch) ChangeStatus(target Status, notes string, now time.Time) error {
	if target == Shipped && b.warehouseID == nil {
		return errs.NewMissingPrerequisiteError("warehouseId",
			"batch has no destination warehouse")
	}

	newStatus, err := b.status.Transition(target)
	if err != nil {
		return err
	}

	b.status = newStatus
	if newStatus == Harvested && b.actualHarvest == nil {
		harvestedAt := now
		b.actualHarvest = &harvestedAt
	}
	if notes != "" {
		b.notes = notes
	}
	return nil
}

// AssignWarehouse sets the destination warehouse, satisfying the Shipped
// prerequisite. The assignment must happen before the batch ships; after
// that the destination is fixed.
func (b *CropBatch) AssignWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if b.status == Shipped || b.status == Received || b.status == Stored {
		return errs.NewValueIsInvalidErrorWithCause("warehouseId",
			fmt.Errorf("destination is fixed once the batch is %s", b.status))
	}
	b.warehouseID = &warehouseID
	return nil
}

func (b *CropBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *CropBatch) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	b.trackingCode = code
	return nil
}

func (b *CropBatch) setCropType(cropType string) error {
	if cropType == "" {
		return errs.NewValueIsRequiredError("cropType")
	}
	b.cropType = cropType
	return nil
}

func (b *CropBatch) setVariety(variety string) error {
	// Variety is optional; some crops are tracked at type granularity.
	b.variety = variety
	return nil
}

func (b *CropBatch) setQuantityKg(quantityKg float64) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%v is not greater than 0", quantityKg))
	}
	b.quantityKg = quantityKg
	return nil
}

func (b *CropBatch) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	b.farmerID = farmerID
	return nil
}
