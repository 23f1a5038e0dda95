package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrAssignWarehouseCommandIsNotConstructed = errors.New(
	"AssignWarehouseCommand must be created via NewAssignWarehouseCommand constructor",
)

// AssignWarehouseCommand represents a request to set a batch's destination
// warehouse. The assignment is the prerequisite for shipping.
type AssignWarehouseCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	batchID     kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWarehouseCommand creates a command to assign a destination warehouse.
func NewAssignWarehouseCommand(
	actorID kernel.UUID,
	batchID kernel.UUID,
	warehouseID kernel.UUID,
) (AssignWarehouseCommand, error) {
	command := AssignWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setBatchID(batchID),
		command.setWarehouseID(warehouseID),
	); err != nil {
		return AssignWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrAssignWarehouseCommandIsNotConstructed)
}

// ActorID returns the authenticated caller's user identifier.
func (c AssignWarehouseCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BatchID returns the batch to update.
func (c AssignWarehouseCommand) BatchID() kernel.UUID {
	return c.batchID
}

// WarehouseID returns the destination warehouse.
func (c AssignWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *AssignWarehouseCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignWarehouseCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *AssignWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
