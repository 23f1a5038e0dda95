package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrUpdateCropStatusCommandIsNotConstructed = errors.New(
	"UpdateCropStatusCommand must be created via NewUpdateCropStatusCommand constructor",
)

// UpdateCropStatusCommand represents a request to move a crop batch to a new
// status on behalf of an authenticated actor.
//
// Example:
//
//	cmd, err := NewUpdateCropStatusCommand(actorID, batchID, batch.Harvested, "early harvest")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update batch: %w", err)
//	}
type UpdateCropStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	batchID kernel.UUID
	target  batch.Status
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateCropStatusCommand creates a command to move a batch to target.
// Validates identifiers and that target is a defined status. Notes are
// optional free text attached to the batch on success.
func NewUpdateCropStatusCommand(
	actorID kernel.UUID,
	batchID kernel.UUID,
	target batch.Status,
	notes string,
) (UpdateCropStatusCommand, error) {
	command := UpdateCropStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setBatchID(batchID),
		command.setTarget(target),
	); err != nil {
		return UpdateCropStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCropStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCropStatusCommandIsNotConstructed)
}

// ActorID returns the authenticated caller's user identifier.
func (c UpdateCropStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BatchID returns the batch to transition.
func (c UpdateCropStatusCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Target returns the requested status.
func (c UpdateCropStatusCommand) Target() batch.Status {
	return c.target
}

// Notes returns the optional free-text note.
func (c UpdateCropStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateCropStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateCropStatusCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *UpdateCropStatusCommand) setTarget(target batch.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
