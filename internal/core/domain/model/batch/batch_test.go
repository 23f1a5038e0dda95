package batch_test

import (
	"testing"
	"time"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTrackingCode(t *testing.T, raw string) kernel.TrackingCode {
	t.Helper()
	code, err := kernel.NewTrackingCode(raw)
	require.NoError(t, err)
	return code
}

func newPlantedBatch(t *testing.T) *batch.CropBatch {
	t.Helper()
	b, err := batch.NewCropBatch(
		kernel.NewUUID(),
		mustTrackingCode(t, "CB-2025-001"),
		"Coffee",
		"Arabica",
		120.5,
		kernel.NewUUID(),
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return b
}

func TestNewCropBatch(t *testing.T) {
	t.Run("creates_batch_in_planted_status", func(t *testing.T) {
		b := newPlantedBatch(t)

		require.NoError(t, b.Validate())
		assert.Equal(t, batch.Planted, b.Status())
		assert.Nil(t, b.WarehouseID())
		assert.Nil(t, b.ActualHarvest())
		assert.Equal(t, batch.Unknown, b.PersistedStatus())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		_, err := batch.NewCropBatch(
			kernel.UUID{},
			kernel.TrackingCode{},
			"",
			"",
			0,
			kernel.UUID{},
			time.Time{},
			time.Time{},
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var b batch.CropBatch
		require.ErrorIs(t, b.Validate(), batch.ErrCropBatchIsNotConstructed)
	})
}

func TestCropBatch_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	t.Run("entering_harvested_stamps_actual_harvest", func(t *testing.T) {
		b := newPlantedBatch(t)
		require.NoError(t, b.ChangeStatus(batch.Growing, "", now))
		require.NoError(t, b.ChangeStatus(batch.ReadyForHarvest, "", now))

		require.NoError(t, b.ChangeStatus(batch.Harvested, "first pick", now))

		require.NotNil(t, b.ActualHarvest())
		assert.Equal(t, now, *b.ActualHarvest())
		assert.Equal(t, "first pick", b.Notes())
	})

	t.Run("skipping_a_status_fails", func(t *testing.T) {
		b := newPlantedBatch(t)

		err := b.ChangeStatus(batch.Harvested, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, batch.Planted, b.Status())
	})

	t.Run("shipping_requires_warehouse", func(t *testing.T) {
		b := restoredBatch(t, batch.Processed, nil)

		err := b.ChangeStatus(batch.Shipped, "", now)

		require.ErrorIs(t, err, errs.ErrMissingPrerequisite)
		assert.Equal(t, batch.Processed, b.Status())
	})

	t.Run("shipping_succeeds_with_warehouse", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := restoredBatch(t, batch.Processed, &warehouseID)

		require.NoError(t, b.ChangeStatus(batch.Shipped, "", now))
		assert.Equal(t, batch.Shipped, b.Status())
	})

	t.Run("empty_notes_keep_previous_notes", func(t *testing.T) {
		b := newPlantedBatch(t)
		require.NoError(t, b.ChangeStatus(batch.Growing, "germinated", now))

		require.NoError(t, b.ChangeStatus(batch.ReadyForHarvest, "", now))

		assert.Equal(t, "germinated", b.Notes())
	})
}

func TestCropBatch_AssignWarehouse(t *testing.T) {
	t.Run("assigns_before_shipping", func(t *testing.T) {
		b := restoredBatch(t, batch.Processed, nil)
		warehouseID := kernel.NewUUID()

		require.NoError(t, b.AssignWarehouse(warehouseID))

		require.NotNil(t, b.WarehouseID())
		assert.True(t, warehouseID.IsEqual(*b.WarehouseID()))
	})

	t.Run("destination_fixed_once_shipped", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := restoredBatch(t, batch.Shipped, &warehouseID)

		err := b.AssignWarehouse(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, warehouseID.IsEqual(*b.WarehouseID()))
	})

	t.Run("rejects_zero_warehouse_id", func(t *testing.T) {
		b := restoredBatch(t, batch.Processed, nil)
		require.Error(t, b.AssignWarehouse(kernel.UUID{}))
	})
}

func TestRestoreCropBatch(t *testing.T) {
	t.Run("remembers_persisted_status", func(t *testing.T) {
		b := restoredBatch(t, batch.Harvested, nil)

		assert.Equal(t, batch.Harvested, b.Status())
		assert.Equal(t, batch.Harvested, b.PersistedStatus())

		require.NoError(t, b.ChangeStatus(batch.Processed, "", time.Now()))

		// persisted status keeps the loaded value until the repo saves
		assert.Equal(t, batch.Processed, b.Status())
		assert.Equal(t, batch.Harvested, b.PersistedStatus())
	})

	t.Run("rejects_invalid_stored_status", func(t *testing.T) {
		_, err := batch.RestoreCropBatch(
			kernel.NewUUID(),
			mustTrackingCode(t, "CB-2025-002"),
			"Coffee", "", 80, batch.Status(42), kernel.NewUUID(),
			nil, time.Now(), time.Now(), nil, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func restoredBatch(t *testing.T, status batch.Status, warehouseID *kernel.UUID) *batch.CropBatch {
	t.Helper()
	b, err := batch.RestoreCropBatch(
		kernel.NewUUID(),
		mustTrackingCode(t, "CB-2025-001"),
		"Coffee",
		"Arabica",
		120.5,
		status,
		kernel.NewUUID(),
		warehouseID,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		nil,
		"",
	)
	require.NoError(t, err)
	return b
}
