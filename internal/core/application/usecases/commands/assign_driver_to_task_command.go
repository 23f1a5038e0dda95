package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrAssignDriverToTaskCommandIsNotConstructed = errors.New(
	"AssignDriverToTaskCommand must be created via NewAssignDriverToTaskCommand constructor",
)

// AssignDriverToTaskCommand represents a request to attach a driver and a
// vehicle to an existing transport task that has none yet.
type AssignDriverToTaskCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	taskID    kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverToTaskCommand creates a command to assign resources to a task.
func NewAssignDriverToTaskCommand(
	actorID kernel.UUID,
	taskID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
) (AssignDriverToTaskCommand, error) {
	command := AssignDriverToTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setTaskID(taskID),
		command.setResources(driverID, vehicleID),
	); err != nil {
		return AssignDriverToTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverToTaskCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverToTaskCommandIsNotConstructed)
}

// ActorID returns the coordinator making the assignment.
func (c AssignDriverToTaskCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TaskID returns the task to assign resources to.
func (c AssignDriverToTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// DriverID returns the driver to commit.
func (c AssignDriverToTaskCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to commit.
func (c AssignDriverToTaskCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *AssignDriverToTaskCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignDriverToTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AssignDriverToTaskCommand) setResources(driverID, vehicleID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}
