package services_test

import (
	"testing"
	"time"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/core/domain/services"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marchFirst = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func processedBatch(t *testing.T, warehouseID *kernel.UUID) *batch.CropBatch {
	t.Helper()
	code, err := kernel.NewTrackingCode("CB-2025-001")
	require.NoError(t, err)
	b, err := batch.RestoreCropBatch(
		kernel.NewUUID(), code, "Coffee", "Arabica", 120, batch.Processed,
		kernel.NewUUID(), warehouseID,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		nil, "",
	)
	require.NoError(t, err)
	return b
}

func availableDriver(t *testing.T) *resource.Driver {
	t.Helper()
	d, err := resource.NewDriver(kernel.NewUUID(), "Santos", "", "DL-1")
	require.NoError(t, err)
	return d
}

func availableVehicle(t *testing.T) *resource.Vehicle {
	t.Helper()
	v, err := resource.NewVehicle(kernel.NewUUID(), "HAA-1234", "truck", 3500)
	require.NoError(t, err)
	return v
}

func activeTaskOn(t *testing.T, date time.Time) *transport.TransportTask {
	t.Helper()
	task, err := transport.NewTransportTask(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), date, "farm", "warehouse")
	require.NoError(t, err)
	return task
}

func TestTransportScheduler_Schedule(t *testing.T) {
	scheduler := services.NewTransportScheduler()

	t.Run("success_applies_all_four_changes_together", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		d := availableDriver(t)
		v := availableVehicle(t)

		task, err := scheduler.Schedule(
			kernel.NewUUID(), b, d, v, kernel.NewUUID(),
			marchFirst, "Finca El Paraíso", "Central Warehouse",
			nil, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, transport.Scheduled, task.Status())
		assert.Equal(t, batch.Shipped, b.Status())
		assert.Equal(t, resource.DriverOnDuty, d.Status())
		assert.Equal(t, resource.VehicleInUse, v.Status())
		assert.True(t, task.IsAssignedTo(d.ID()))
	})

	t.Run("batch_not_eligible", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		code, err := kernel.NewTrackingCode("CB-2025-002")
		require.NoError(t, err)
		harvested, err := batch.RestoreCropBatch(
			kernel.NewUUID(), code, "Coffee", "", 50, batch.Harvested,
			kernel.NewUUID(), &warehouseID, marchFirst, marchFirst, nil, "")
		require.NoError(t, err)

		_, err = scheduler.Schedule(
			kernel.NewUUID(), harvested, availableDriver(t), availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b", nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("batch_without_warehouse", func(t *testing.T) {
		b := processedBatch(t, nil)

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, availableDriver(t), availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b", nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrMissingPrerequisite)
		assert.Equal(t, batch.Processed, b.Status())
	})

	t.Run("batch_with_active_task", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		existing := activeTaskOn(t, marchFirst)

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, availableDriver(t), availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b",
			[]*transport.TransportTask{existing}, nil, nil)

		require.ErrorIs(t, err, errs.ErrSchedulingConflict)
	})

	t.Run("busy_driver_is_unavailable", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		d := availableDriver(t)
		require.NoError(t, d.MarkBusy())

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, d, availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b", nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		assert.Equal(t, batch.Processed, b.Status())
	})

	t.Run("driver_with_task_same_date_conflicts", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		d := availableDriver(t)
		v := availableVehicle(t)
		sameDay := activeTaskOn(t, marchFirst)

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, d, v, kernel.NewUUID(),
			marchFirst, "a", "b",
			nil, []*transport.TransportTask{sameDay}, nil)

		require.ErrorIs(t, err, errs.ErrSchedulingConflict)
		assert.Equal(t, resource.DriverAvailable, d.Status())
		assert.Equal(t, resource.VehicleAvailable, v.Status())
	})

	t.Run("driver_with_task_different_date_schedules_fine", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		otherDay := activeTaskOn(t, marchFirst.AddDate(0, 0, 1))

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, availableDriver(t), availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b",
			nil, []*transport.TransportTask{otherDay}, nil)

		require.NoError(t, err)
	})

	t.Run("vehicle_conflict_detected_independently", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		b := processedBatch(t, &warehouseID)
		sameDay := activeTaskOn(t, marchFirst)

		_, err := scheduler.Schedule(
			kernel.NewUUID(), b, availableDriver(t), availableVehicle(t),
			kernel.NewUUID(), marchFirst, "a", "b",
			nil, nil, []*transport.TransportTask{sameDay})

		require.ErrorIs(t, err, errs.ErrSchedulingConflict)
	})
}

func TestTransportScheduler_Release(t *testing.T) {
	scheduler := services.NewTransportScheduler()

	busyDriver := func(t *testing.T) *resource.Driver {
		d := availableDriver(t)
		require.NoError(t, d.MarkBusy())
		return d
	}
	busyVehicle := func(t *testing.T) *resource.Vehicle {
		v := availableVehicle(t)
		require.NoError(t, v.MarkBusy())
		return v
	}

	t.Run("releases_when_no_other_active_task", func(t *testing.T) {
		d := busyDriver(t)
		v := busyVehicle(t)

		driverReleased, vehicleReleased, err := scheduler.Release(d, v, nil, nil)

		require.NoError(t, err)
		assert.True(t, driverReleased)
		assert.True(t, vehicleReleased)
		assert.Equal(t, resource.DriverAvailable, d.Status())
		assert.Equal(t, resource.VehicleAvailable, v.Status())
	})

	t.Run("driver_with_second_active_task_stays_busy", func(t *testing.T) {
		d := busyDriver(t)
		v := busyVehicle(t)
		other := activeTaskOn(t, marchFirst.AddDate(0, 0, 2))

		driverReleased, vehicleReleased, err := scheduler.Release(
			d, v, []*transport.TransportTask{other}, nil)

		require.NoError(t, err)
		assert.False(t, driverReleased)
		assert.True(t, vehicleReleased)
		assert.Equal(t, resource.DriverOnDuty, d.Status())
		assert.Equal(t, resource.VehicleAvailable, v.Status())
	})

	t.Run("terminal_tasks_do_not_block_release", func(t *testing.T) {
		d := busyDriver(t)
		done := activeTaskOn(t, marchFirst)
		require.NoError(t, done.Cancel())

		driverReleased, _, err := scheduler.Release(d, nil, []*transport.TransportTask{done}, nil)

		require.NoError(t, err)
		assert.True(t, driverReleased)
	})
}
