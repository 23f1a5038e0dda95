package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/services"
	"agrotrace/internal/pkg/errs"
)

// AssignDriverToTaskCommandHandler attaches resources to an unassigned task.
// The same availability and conflict rules as scheduling apply; additionally
// the task must still belong to the requesting coordinator.
type AssignDriverToTaskCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewAssignDriverToTaskCommandHandler creates a handler for resource assignment.
func NewAssignDriverToTaskCommandHandler(uowFactory TransportUoWFactory) AssignDriverToTaskCommandHandler {
	return AssignDriverToTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignDriverToTaskCommandHandler) Handle(ctx context.Context, command AssignDriverToTaskCommand) error {
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
	if err = services.NewRoleGate().CheckAction(actor, services.ActionAssignDriver); err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	task, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if !task.IsOwnedBy(actor.ID()) {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(services.ActionAssignDriver))
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

	driverTasks, err := taskRepo.GetActiveByDriver(ctx, driver.ID())
	if err != nil {
		return err
	}
	vehicleTasks, err := taskRepo.GetActiveByVehicle(ctx, vehicle.ID())
	if err != nil {
		return err
	}

	if err = services.NewTransportScheduler().CheckAssignment(
		task, driver, vehicle, driverTasks, vehicleTasks); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, driver); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionAssignDriver),
		"transport_task", task.ID(),
		"", "",
		"driver "+driver.ID().String()+", vehicle "+vehicle.ID().String(),
		time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
