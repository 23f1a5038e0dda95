package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/services"
)

// AssignWarehouseCommandHandler sets a batch's destination warehouse.
// The warehouse must exist; the batch must not have shipped yet.
type AssignWarehouseCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAssignWarehouseCommandHandler creates a handler for warehouse assignment.
func NewAssignWarehouseCommandHandler(uowFactory BatchUoWFactory) AssignWarehouseCommandHandler {
	return AssignWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse assignment command.
func (h AssignWarehouseCommandHandler) Handle(ctx context.Context, command AssignWarehouseCommand) error {
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

	staffRepo := uow.StaffRepository()
	actor, err := staffRepo.GetActor(ctx, command.ActorID())
	if err != nil {
		return err
	}
	if err = services.NewRoleGate().CheckAction(actor, services.ActionAssignWarehouse); err != nil {
		return err
	}

	if _, err = staffRepo.GetWarehouse(ctx, command.WarehouseID()); err != nil {
		return err
	}

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, command.BatchID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignWarehouse(command.WarehouseID()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionAssignWarehouse),
		"crop_batch", aggregate.ID(),
		"", "",
		"warehouse "+command.WarehouseID().String(),
		time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
