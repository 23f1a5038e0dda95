package commands

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/core/domain/services"
	"agrotrace/internal/pkg/errs"
)

// UpdateTransportTaskStatusCommandHandler drives the coordinator-side task
// lifecycle: Cancelled, Delayed, and the Delayed-to-InTransit resume.
// Cancellation releases the task's driver and vehicle, rechecking for other
// active commitments before dropping either back to Available.
type UpdateTransportTaskStatusCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewUpdateTransportTaskStatusCommandHandler creates a handler for task
// lifecycle changes.
func NewUpdateTransportTaskStatusCommandHandler(
	uowFactory TransportUoWFactory,
) UpdateTransportTaskStatusCommandHandler {
	return UpdateTransportTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h UpdateTransportTaskStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateTransportTaskStatusCommand,
) error {
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
	if err = services.NewRoleGate().CheckAction(actor, services.ActionUpdateTransportStatus); err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	task, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if !task.IsOwnedBy(actor.ID()) {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(services.ActionUpdateTransportStatus))
	}

	from := task.Status()
	switch command.Target() {
	case transport.Cancelled:
		err = task.Cancel()
	case transport.Delayed:
		err = task.Delay()
	case transport.InTransit:
		err = task.Resume()
	default:
		err = errs.NewInvalidTransitionError("transport task",
			from.String(), command.Target().String())
	}
	if err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}

	if task.Status() == transport.Cancelled {
		if err = releaseTaskResources(ctx, uow, task); err != nil {
			return err
		}
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionUpdateTransportStatus),
		"transport_task", task.ID(),
		from.String(), task.Status().String(),
		command.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseTaskResources reverts a closed task's driver and vehicle to
// Available unless they hold another active task. The closed task itself is
// excluded from the recheck: its row still reads active inside this
// transaction.
func releaseTaskResources(ctx context.Context, uow TransportUoW, task *transport.TransportTask) error {
	if task.DriverID() == nil && task.VehicleID() == nil {
		return nil
	}

	taskRepo := uow.TransportTaskRepository()

	var (
		driver       *resource.Driver
		vehicle      *resource.Vehicle
		driverTasks  []*transport.TransportTask
		vehicleTasks []*transport.TransportTask
	)

	driverRepo := uow.DriverRepository()
	if task.DriverID() != nil {
		loaded, err := driverRepo.Get(ctx, *task.DriverID())
		if err != nil {
			return err
		}
		driver = loaded

		active, err := taskRepo.GetActiveByDriver(ctx, loaded.ID())
		if err != nil {
			return err
		}
		driverTasks = excludeTask(active, task.ID())
	}

	vehicleRepo := uow.VehicleRepository()
	if task.VehicleID() != nil {
		loaded, err := vehicleRepo.Get(ctx, *task.VehicleID())
		if err != nil {
			return err
		}
		vehicle = loaded

		active, err := taskRepo.GetActiveByVehicle(ctx, loaded.ID())
		if err != nil {
			return err
		}
		vehicleTasks = excludeTask(active, task.ID())
	}

	driverReleased, vehicleReleased, err := services.NewTransportScheduler().Release(
		driver, vehicle, driverTasks, vehicleTasks)
	if err != nil {
		return err
	}

	if driverReleased {
		if err = driverRepo.Update(ctx, driver); err != nil {
			return err
		}
	}
	if vehicleReleased {
		if err = vehicleRepo.Update(ctx, vehicle); err != nil {
			return err
		}
	}
	return nil
}

func excludeTask(tasks []*transport.TransportTask, id kernel.UUID) []*transport.TransportTask {
	result := tasks[:0]
	for _, t := range tasks {
		if !t.ID().IsEqual(id) {
			result = append(result, t)
		}
	}
	return result
}
