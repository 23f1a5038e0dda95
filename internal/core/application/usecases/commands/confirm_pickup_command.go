package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents a driver confirming physical pickup of a
// batch by scanning its tracking code.
//
// Example:
//
//	cmd, err := NewConfirmPickupCommand(driverID, taskID, "CB-2025-001")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("pickup confirmation failed: %w", err)
//	}
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	taskID      kernel.UUID
	scannedCode string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm pickup.
func NewConfirmPickupCommand(
	actorID kernel.UUID,
	taskID kernel.UUID,
	scannedCode string,
) (ConfirmPickupCommand, error) {
	command := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setTaskID(taskID),
		command.setScannedCode(scannedCode),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ActorID returns the driver confirming pickup.
func (c ConfirmPickupCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TaskID returns the task being picked up.
func (c ConfirmPickupCommand) TaskID() kernel.UUID {
	return c.taskID
}

// ScannedCode returns the tracking code the driver scanned.
func (c ConfirmPickupCommand) ScannedCode() string {
	return c.scannedCode
}

func (c *ConfirmPickupCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ConfirmPickupCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ConfirmPickupCommand) setScannedCode(scannedCode string) error {
	if scannedCode == "" {
		return errs.NewValueIsRequiredError("scannedCode")
	}

	c.scannedCode = scannedCode
	return nil
}
