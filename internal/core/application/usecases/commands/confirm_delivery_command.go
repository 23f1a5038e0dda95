package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a driver confirming delivery of a batch
// at the destination by scanning its tracking code.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	taskID      kernel.UUID
	scannedCode string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery.
func NewConfirmDeliveryCommand(
	actorID kernel.UUID,
	taskID kernel.UUID,
	scannedCode string,
) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setTaskID(taskID),
		command.setScannedCode(scannedCode),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ActorID returns the driver confirming delivery.
func (c ConfirmDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TaskID returns the task being delivered.
func (c ConfirmDeliveryCommand) TaskID() kernel.UUID {
	return c.taskID
}

// ScannedCode returns the tracking code the driver scanned.
func (c ConfirmDeliveryCommand) ScannedCode() string {
	return c.scannedCode
}

func (c *ConfirmDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ConfirmDeliveryCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ConfirmDeliveryCommand) setScannedCode(scannedCode string) error {
	if scannedCode == "" {
		return errs.NewValueIsRequiredError("scannedCode")
	}

	c.scannedCode = scannedCode
	return nil
}
