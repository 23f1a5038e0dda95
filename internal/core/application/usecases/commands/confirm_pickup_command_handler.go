package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/services"
	"agrotrace/internal/pkg/errs"
)

// ConfirmPickupCommandHandler moves a task to InTransit when the assigned
// driver scans the batch's tracking code at the pickup location.
type ConfirmPickupCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory TransportUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.StaffRepository().GetActor(ctx, command.ActorID())
	if err != nil {
		return err
	}
	if err = services.NewRoleGate().CheckAction(actor, services.ActionConfirmPickup); err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	task, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if !task.IsAssignedTo(actor.ID()) {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(services.ActionConfirmPickup))
	}

	aggregate, err := uow.BatchRepository().Get(ctx, task.BatchID())
	if err != nil {
		return err
	}
	if !aggregate.TrackingCode().Matches(command.ScannedCode()) {
		return errs.NewCodeMismatchError(command.ScannedCode())
	}

	now := time.Now().UTC()
	from := task.Status()
	if err = task.ConfirmPickup(now); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionConfirmPickup),
		"transport_task", task.ID(),
		from.String(), task.Status().String(),
		"batch "+aggregate.TrackingCode().String(), now)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
