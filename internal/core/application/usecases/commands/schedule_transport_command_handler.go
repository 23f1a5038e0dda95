package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/application/events"
	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/core/domain/services"
)

// ScheduleTransportCommandHandler orchestrates transport scheduling. The
// scheduler applies four coupled changes: task creation, batch to Shipped,
// driver and vehicle to busy. All four persist in one transaction; the
// conditional updates on driver and vehicle status make two coordinators
// racing for the same resource fail instead of double-booking it.
type ScheduleTransportCommandHandler struct {
	uowFactory TransportUoWFactory
	dispatcher events.Dispatcher
}

// NewScheduleTransportCommandHandler creates a handler for transport scheduling.
func NewScheduleTransportCommandHandler(
	uowFactory TransportUoWFactory,
	dispatcher events.Dispatcher,
) ScheduleTransportCommandHandler {
	return ScheduleTransportCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the scheduling command.
func (h ScheduleTransportCommandHandler) Handle(ctx context.Context, command ScheduleTransportCommand) error {
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
	if err = services.NewRoleGate().CheckAction(actor, services.ActionScheduleTransport); err != nil {
		return err
	}

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, command.BatchID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	driver, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	vehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	batchTasks, err := taskRepo.GetActiveByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	driverTasks, err := taskRepo.GetActiveByDriver(ctx, driver.ID())
	if err != nil {
		return err
	}
	vehicleTasks, err := taskRepo.GetActiveByVehicle(ctx, vehicle.ID())
	if err != nil {
		return err
	}

	task, err := services.NewTransportScheduler().Schedule(
		kernel.NewUUID(), aggregate, driver, vehicle, actor.ID(),
		command.ScheduledDate(), command.Pickup(), command.Delivery(),
		batchTasks, driverTasks, vehicleTasks)
	if err != nil {
		return err
	}

	if err = taskRepo.Add(ctx, task); err != nil {
		return err
	}
	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, driver); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionScheduleTransport),
		"transport_task", task.ID(),
		"", transport.Scheduled.String(),
		"batch "+aggregate.TrackingCode().String(), now)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	taskID := task.ID()
	coordinatorID := actor.ID()
	h.dispatcher.Dispatch(ctx, events.Event{
		Kind:          notification.TransportScheduled,
		BatchID:       aggregate.ID(),
		TrackingCode:  aggregate.TrackingCode().String(),
		NewStatus:     task.Status().String(),
		TaskID:        &taskID,
		WarehouseID:   aggregate.WarehouseID(),
		CoordinatorID: &coordinatorID,
		Details:       task.ScheduledDate().Format(time.DateOnly),
		OccurredAt:    now,
	})

	return nil
}
