package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/guard"
)

var ErrUpdateTransportTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTransportTaskStatusCommand must be created via NewUpdateTransportTaskStatusCommand constructor",
)

// UpdateTransportTaskStatusCommand represents a coordinator-driven task
// lifecycle change: cancelling, delaying, or resuming a delayed task.
// Pickup and delivery confirmations are separate driver commands.
type UpdateTransportTaskStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	taskID  kernel.UUID
	target  transport.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewUpdateTransportTaskStatusCommand creates a command to change a task's status.
func NewUpdateTransportTaskStatusCommand(
	actorID kernel.UUID,
	taskID kernel.UUID,
	target transport.Status,
	reason string,
) (UpdateTransportTaskStatusCommand, error) {
	command := UpdateTransportTaskStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setTaskID(taskID),
		command.setTarget(target),
	); err != nil {
		return UpdateTransportTaskStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransportTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransportTaskStatusCommandIsNotConstructed)
}

// ActorID returns the coordinator making the change.
func (c UpdateTransportTaskStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TaskID returns the task to update.
func (c UpdateTransportTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Target returns the requested task status.
func (c UpdateTransportTaskStatusCommand) Target() transport.Status {
	return c.target
}

// Reason returns the optional free-text reason.
func (c UpdateTransportTaskStatusCommand) Reason() string {
	return c.reason
}

func (c *UpdateTransportTaskStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateTransportTaskStatusCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *UpdateTransportTaskStatusCommand) setTarget(target transport.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
