package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/services"
	"agrotrace/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler moves a task to Delivered and releases its
// resources. The crop batch's status is deliberately untouched: warehouse
// receipt is a separate confirmation by a different role, so custody of the
// goods transfers only when that role signs for them.
type ConfirmDeliveryCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory TransportUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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
	if err = services.NewRoleGate().CheckAction(actor, services.ActionConfirmDelivery); err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	task, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if !task.IsAssignedTo(actor.ID()) {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(services.ActionConfirmDelivery))
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
	if err = task.ConfirmDelivery(now); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}

	if err = releaseTaskResources(ctx, uow, task); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionConfirmDelivery),
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
