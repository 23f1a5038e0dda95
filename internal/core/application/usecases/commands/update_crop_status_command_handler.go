package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/application/events"
	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/services"
)

// UpdateCropStatusCommandHandler orchestrates a crop batch status transition.
// The role gate runs before any state is touched; the transition, the audit
// entry and the conditional batch update commit as one transaction. Fan-out
// for notification-worthy statuses happens after the commit.
type UpdateCropStatusCommandHandler struct {
	uowFactory BatchUoWFactory
	dispatcher events.Dispatcher
}

// NewUpdateCropStatusCommandHandler creates a handler for batch transitions.
func NewUpdateCropStatusCommandHandler(
	uowFactory BatchUoWFactory,
	dispatcher events.Dispatcher,
) UpdateCropStatusCommandHandler {
	return UpdateCropStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the status update command.
func (h UpdateCropStatusCommandHandler) Handle(ctx context.Context, command UpdateCropStatusCommand) error {
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

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, command.BatchID())
	if err != nil {
		return err
	}

	if err = services.NewRoleGate().CheckTransition(actor, aggregate.Status(), command.Target()); err != nil {
		return err
	}

	now := time.Now().UTC()
	from := aggregate.Status()
	if err = aggregate.ChangeStatus(command.Target(), command.Notes(), now); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionUpdateCropStatus),
		"crop_batch", aggregate.ID(),
		from.String(), aggregate.Status().String(),
		command.Notes(), now)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if event, ok := fanOutEvent(aggregate, now); ok {
		h.dispatcher.Dispatch(ctx, event)
	}

	return nil
}

// fanOutEvent maps notification-worthy statuses to their event. Most
// transitions are silent; only the hand-offs between stages notify anyone.
func fanOutEvent(aggregate *batch.CropBatch, now time.Time) (events.Event, bool) {
	var kind notification.Type
	switch aggregate.Status() {
	case batch.ReadyForHarvest:
		kind = notification.BatchReadyForHarvest
	case batch.Processed:
		kind = notification.BatchProcessed
	case batch.Shipped:
		kind = notification.BatchShipped
	default:
		return events.Event{}, false
	}

	return events.Event{
		Kind:         kind,
		BatchID:      aggregate.ID(),
		TrackingCode: aggregate.TrackingCode().String(),
		NewStatus:    aggregate.Status().String(),
		WarehouseID:  aggregate.WarehouseID(),
		OccurredAt:   now,
	}, true
}
