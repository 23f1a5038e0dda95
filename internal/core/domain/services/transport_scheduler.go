package services

import (
	"time"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/errs"
)

// TransportScheduler is the domain service allocating scarce transport
// resources to delivery work.
//
// Business rules:
//   - only batches in a transport-eligible status (Processed or Packaged)
//     with an assigned destination warehouse can be scheduled
//   - a batch has at most one active task
//   - a driver or vehicle must be Available and must not hold another
//     active task on the same calendar date
//   - scheduling a task ships the batch and marks both resources busy,
//     all applied by the caller in one transaction
//   - a resource is released back to Available only when it holds no other
//     active task
//
// Conflict detection is date-granular by design: two tasks on the same date
// conflict even if their time windows would not overlap.
type TransportScheduler struct{}

// NewTransportScheduler creates a TransportScheduler.
func NewTransportScheduler() TransportScheduler {
	return TransportScheduler{}
}

// Schedule validates the allocation and, on success, creates the task and
// applies the coupled status changes in memory:
// batch → Shipped, driver → OnDuty, vehicle → InUse.
//
// batchActiveTasks are the active tasks already referencing the batch;
// driverTasks and vehicleTasks are the active tasks of the resources on
// scheduledDate. The command handler queries these inside the same
// transaction that persists the result.
func (s TransportScheduler) Schedule(
	taskID kernel.UUID,
	b *batch.CropBatch,
	driver *resource.Driver,
	vehicle *resource.Vehicle,
	coordinatorID kernel.UUID,
	scheduledDate time.Time,
	pickup string,
	delivery string,
	batchActiveTasks []*transport.TransportTask,
	driverTasks []*transport.TransportTask,
	vehicleTasks []*transport.TransportTask,
) (*transport.TransportTask, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := driver.Validate(); err != nil {
		return nil, err
	}
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if !b.Status().EligibleForTransport() {
		return nil, errs.NewInvalidTransitionError("crop batch",
			b.Status().String(), batch.Shipped.String())
	}
	if b.WarehouseID() == nil {
		return nil, errs.NewMissingPrerequisiteError("warehouseId",
			"batch has no destination warehouse")
	}
	if len(batchActiveTasks) > 0 {
		return nil, errs.NewSchedulingConflictError("crop batch",
			b.ID().String(), dateString(scheduledDate))
	}

	if !driver.IsAvailable() {
		return nil, errs.NewResourceUnavailableError("driver",
			driver.ID().String(), driver.Status().String())
	}
	if !vehicle.IsAvailable() {
		return nil, errs.NewResourceUnavailableError("vehicle",
			vehicle.ID().String(), vehicle.Status().String())
	}

	if hasActiveTaskOn(driverTasks, scheduledDate) {
		return nil, errs.NewSchedulingConflictError("driver",
			driver.ID().String(), dateString(scheduledDate))
	}
	if hasActiveTaskOn(vehicleTasks, scheduledDate) {
		return nil, errs.NewSchedulingConflictError("vehicle",
			vehicle.ID().String(), dateString(scheduledDate))
	}

	task, err := transport.NewTransportTask(taskID, b.ID(), coordinatorID,
		scheduledDate, pickup, delivery)
	if err != nil {
		return nil, err
	}
	if err = task.AssignResources(driver.ID(), vehicle.ID()); err != nil {
		return nil, err
	}

	if err = b.ChangeStatus(batch.Shipped, "", scheduledDate); err != nil {
		return nil, err
	}
	if err = driver.MarkBusy(); err != nil {
		return nil, err
	}
	if err = vehicle.MarkBusy(); err != nil {
		return nil, err
	}

	return task, nil
}

// CheckAssignment validates attaching resources to an existing unassigned
// task (the two-step coordinator flow). The same availability and conflict
// rules as Schedule apply; on success both resources are marked busy and the
// task carries them.
func (s TransportScheduler) CheckAssignment(
	task *transport.TransportTask,
	driver *resource.Driver,
	vehicle *resource.Vehicle,
	driverTasks []*transport.TransportTask,
	vehicleTasks []*transport.TransportTask,
) error {
	if err := task.Validate(); err != nil {
		return err
	}

	if !driver.IsAvailable() {
		return errs.NewResourceUnavailableError("driver",
			driver.ID().String(), driver.Status().String())
	}
	if !vehicle.IsAvailable() {
		return errs.NewResourceUnavailableError("vehicle",
			vehicle.ID().String(), vehicle.Status().String())
	}
	if hasActiveTaskOn(driverTasks, task.ScheduledDate()) {
		return errs.NewSchedulingConflictError("driver",
			driver.ID().String(), dateString(task.ScheduledDate()))
	}
	if hasActiveTaskOn(vehicleTasks, task.ScheduledDate()) {
		return errs.NewSchedulingConflictError("vehicle",
			vehicle.ID().String(), dateString(task.ScheduledDate()))
	}

	if err := task.AssignResources(driver.ID(), vehicle.ID()); err != nil {
		return err
	}
	if err := driver.MarkBusy(); err != nil {
		return err
	}
	return vehicle.MarkBusy()
}

// Release reverts the task's driver and vehicle to Available, but only if
// they hold no other active task. otherDriverTasks and otherVehicleTasks are
// the resources' active tasks excluding the one being closed; the scheduler
// rechecks rather than blindly resetting, so a resource committed elsewhere
// stays busy.
func (s TransportScheduler) Release(
	driver *resource.Driver,
	vehicle *resource.Vehicle,
	otherDriverTasks []*transport.TransportTask,
	otherVehicleTasks []*transport.TransportTask,
) (driverReleased, vehicleReleased bool, err error) {
	if driver != nil && !hasActiveTask(otherDriverTasks) {
		if err = driver.Release(); err != nil {
			return false, false, err
		}
		driverReleased = true
	}
	if vehicle != nil && !hasActiveTask(otherVehicleTasks) {
		if err = vehicle.Release(); err != nil {
			return driverReleased, false, err
		}
		vehicleReleased = true
	}
	return driverReleased, vehicleReleased, nil
}

func hasActiveTask(tasks []*transport.TransportTask) bool {
	for _, t := range tasks {
		if t.IsActive() {
			return true
		}
	}
	return false
}

func hasActiveTaskOn(tasks []*transport.TransportTask, date time.Time) bool {
	for _, t := range tasks {
		if t.IsActive() && sameDate(t.ScheduledDate(), date) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func dateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
