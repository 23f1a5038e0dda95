package commands

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

var ErrScheduleTransportCommandIsNotConstructed = errors.New(
	"ScheduleTransportCommand must be created via NewScheduleTransportCommand constructor",
)

// ScheduleTransportCommand represents a request to create a transport task
// for a batch, committing a driver and a vehicle for one date.
//
// Example:
//
//	cmd, err := NewScheduleTransportCommand(
//	    coordinatorID, batchID, driverID, vehicleID,
//	    pickupDate, "Finca El Paraíso", "Central Warehouse")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to schedule transport: %w", err)
//	}
type ScheduleTransportCommand struct { //nolint:recvcheck //using for validation
	actorID       kernel.UUID
	batchID       kernel.UUID
	driverID      kernel.UUID
	vehicleID     kernel.UUID
	scheduledDate time.Time
	pickup        string
	delivery      string

	guard guard.ConstructorGuard
}

// NewScheduleTransportCommand creates a command to schedule transport.
func NewScheduleTransportCommand(
	actorID kernel.UUID,
	batchID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	scheduledDate time.Time,
	pickup string,
	delivery string,
) (ScheduleTransportCommand, error) {
	command := ScheduleTransportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setBatchID(batchID),
		command.setResources(driverID, vehicleID),
		command.setScheduledDate(scheduledDate),
		command.setLocations(pickup, delivery),
	); err != nil {
		return ScheduleTransportCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleTransportCommand) Validate() error {
	return c.guard.Validate(ErrScheduleTransportCommandIsNotConstructed)
}

// ActorID returns the coordinator scheduling the transport.
func (c ScheduleTransportCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BatchID returns the batch to ship.
func (c ScheduleTransportCommand) BatchID() kernel.UUID {
	return c.batchID
}

// DriverID returns the driver to commit.
func (c ScheduleTransportCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to commit.
func (c ScheduleTransportCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ScheduledDate returns the transport date.
func (c ScheduleTransportCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// Pickup returns the pickup location.
func (c ScheduleTransportCommand) Pickup() string {
	return c.pickup
}

// Delivery returns the delivery location.
func (c ScheduleTransportCommand) Delivery() string {
	return c.delivery
}

func (c *ScheduleTransportCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ScheduleTransportCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ScheduleTransportCommand) setResources(driverID, vehicleID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}

func (c *ScheduleTransportCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *ScheduleTransportCommand) setLocations(pickup, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("delivery")
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}
