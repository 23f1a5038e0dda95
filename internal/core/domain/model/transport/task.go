package transport

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrTransportTaskIsNotConstructed is returned when a TransportTask was not
// created through NewTransportTask or RestoreTransportTask.
var ErrTransportTaskIsNotConstructed = errors.New(
	"TransportTask must be created via NewTransportTask or RestoreTransportTask")

// TransportTask is the aggregate assigning a driver and vehicle to move one
// crop batch from a pickup location to a delivery location on a scheduled
// date.
//
// Invariants:
//   - at most one active task exists per batch (enforced by the scheduler
//     and by a partial unique index in the store)
//   - driver and vehicle are either both assigned or both nil
//   - actualPickupAt/actualDeliveryAt are stamped by the scan confirmations
//     and never change afterwards
//
// The scheduled date is date-granular: conflict detection compares calendar
// dates, not time ranges.
type TransportTask struct {
	id            kernel.UUID
	batchID       kernel.UUID
	coordinatorID kernel.UUID
	driverID      *kernel.UUID
	vehicleID     *kernel.UUID
	status        Status
	scheduledDate time.Time
	pickup        string
	delivery      string

	actualPickupAt   *time.Time
	actualDeliveryAt *time.Time

	persistedStatus Status

	guard guard.ConstructorGuard
}

// NewTransportTask creates a task in Scheduled status. Driver and vehicle may
// be assigned at creation (the usual scheduling path) or later through
// AssignResources (the two-step coordinator flow).
func NewTransportTask(
	id kernel.UUID,
	batchID kernel.UUID,
	coordinatorID kernel.UUID,
	scheduledDate time.Time,
	pickup string,
	delivery string,
) (*TransportTask, error) {
	t := &TransportTask{
		status:        Scheduled,
		scheduledDate: scheduledDate.Truncate(24 * time.Hour),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setBatchID(batchID),
		t.setCoordinatorID(coordinatorID),
		t.setLocations(pickup, delivery),
	); err != nil {
		return nil, err
	}

	if scheduledDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledDate")
	}

	return t, nil
}

// RestoreTransportTask reconstructs a task from persistence.
func RestoreTransportTask(
	id kernel.UUID,
	batchID kernel.UUID,
	coordinatorID kernel.UUID,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	status Status,
	scheduledDate time.Time,
	pickup string,
	delivery string,
	actualPickupAt *time.Time,
	actualDeliveryAt *time.Time,
) (*TransportTask, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if (driverID == nil) != (vehicleID == nil) {
		return nil, errs.NewValueIsInvalidError("driver and vehicle must be assigned together")
	}

	t := &TransportTask{
		driverID:         driverID,
		vehicleID:        vehicleID,
		status:           status,
		persistedStatus:  status,
		scheduledDate:    scheduledDate,
		actualPickupAt:   actualPickupAt,
		actualDeliveryAt: actualDeliveryAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setBatchID(batchID),
		t.setCoordinatorID(coordinatorID),
		t.setLocations(pickup, delivery),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the task was built through a constructor.
func (t *TransportTask) Validate() error {
	if t == nil {
		return ErrTransportTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTransportTaskIsNotConstructed)
}

// ID returns the task's unique identifier.
func (t *TransportTask) ID() kernel.UUID { return t.id }

// BatchID returns the crop batch this task moves.
func (t *TransportTask) BatchID() kernel.UUID { return t.batchID }

// CoordinatorID returns the coordinator who owns this task.
func (t *TransportTask) CoordinatorID() kernel.UUID { return t.coordinatorID }

// DriverID returns the assigned driver, or nil before assignment.
func (t *TransportTask) DriverID() *kernel.UUID { return t.driverID }

// VehicleID returns the assigned vehicle, or nil before assignment.
func (t *TransportTask) VehicleID() *kernel.UUID { return t.vehicleID }

// Status returns the current task status.
func (t *TransportTask) Status() Status { return t.status }

// PersistedStatus returns the status observed at load time.
func (t *TransportTask) PersistedStatus() Status { return t.persistedStatus }

// ScheduledDate returns the planned (date-granular) transport date.
func (t *TransportTask) ScheduledDate() time.Time { return t.scheduledDate }

// Pickup returns the pickup location.
func (t *TransportTask) Pickup() string { return t.pickup }

// Delivery returns the delivery location.
func (t *TransportTask) Delivery() string { return t.delivery }

// ActualPickupAt returns the pickup timestamp, or nil before pickup.
func (t *TransportTask) ActualPickupAt() *time.Time { return t.actualPickupAt }

// ActualDeliveryAt returns the delivery timestamp, or nil before delivery.
func (t *TransportTask) ActualDeliveryAt() *time.Time { return t.actualDeliveryAt }

// IsActive reports whether the task still commits its resources.
func (t *TransportTask) IsActive() bool { return t.status.IsActive() }

// IsOwnedBy reports whether the given coordinator created the task.
func (t *TransportTask) IsOwnedBy(coordinatorID kernel.UUID) bool {
	return t.coordinatorID.IsEqual(coordinatorID)
}

// IsAssignedTo reports whether the given driver holds the task.
func (t *TransportTask) IsAssignedTo(driverID kernel.UUID) bool {
	return t.driverID != nil && t.driverID.IsEqual(driverID)
}

// AssignResources attaches a driver and vehicle to an unassigned Scheduled
// task. Availability is checked by the scheduler; this method only guards the
// task's own invariants.
func (t *TransportTask) AssignResources(driverID, vehicleID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}
	if t.status != Scheduled {
		return errs.NewInvalidTransitionError("transport task", t.status.String(), Scheduled.String())
	}
	if t.driverID != nil || t.vehicleID != nil {
		return errs.NewValueIsInvalidError("task already has resources assigned")
	}
	t.driverID = &driverID
	t.vehicleID = &vehicleID
	return nil
}

// ConfirmPickup moves the task to InTransit and stamps the pickup time.
// The scanned-code check happens in the command handler, which holds the
// batch; the task itself only enforces its status machine and assignment.
func (t *TransportTask) ConfirmPickup(now time.Time) error {
	if t.driverID == nil {
		return errs.NewMissingPrerequisiteError("driverId", "task has no driver assigned")
	}
	// Delayed → InTransit exists in the table but is the Resume path, not a pickup.
	if t.status != Scheduled {
		return errs.NewInvalidTransitionError("transport task", t.status.String(), InTransit.String())
	}
	newStatus, err := t.status.Transition(InTransit)
	if err != nil {
		return err
	}
	t.status = newStatus
	pickupAt := now
	t.actualPickupAt = &pickupAt
	return nil
}

// ConfirmDelivery moves the task to Delivered and stamps the delivery time.
// It does not, and must not, touch the crop batch: warehouse receipt is a
// separate confirmation by a different role.
func (t *TransportTask) ConfirmDelivery(now time.Time) error {
	newStatus, err := t.status.Transition(Delivered)
	if err != nil {
		return err
	}
	t.status = newStatus
	deliveryAt := now
	t.actualDeliveryAt = &deliveryAt
	return nil
}

// Cancel moves the task to Cancelled.
func (t *TransportTask) Cancel() error {
	newStatus, err := t.status.Transition(Cancelled)
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// Delay moves an in-transit task to Delayed, typically forced by a
// vehicle-breakdown issue report.
func (t *TransportTask) Delay() error {
	newStatus, err := t.status.Transition(Delayed)
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// Resume moves a delayed task back to InTransit. Always an explicit
// coordinator action after issue resolution.
func (t *TransportTask) Resume() error {
	if t.status != Delayed {
		return errs.NewInvalidTransitionError("transport task", t.status.String(), InTransit.String())
	}
	t.status = InTransit
	return nil
}

func (t *TransportTask) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *TransportTask) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	t.batchID = batchID
	return nil
}

func (t *TransportTask) setCoordinatorID(coordinatorID kernel.UUID) error {
	if err := coordinatorID.Validate(); err != nil {
		return err
	}
	t.coordinatorID = coordinatorID
	return nil
}

func (t *TransportTask) setLocations(pickup, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("delivery")
	}
	t.pickup = pickup
	t.delivery = delivery
	return nil
}
