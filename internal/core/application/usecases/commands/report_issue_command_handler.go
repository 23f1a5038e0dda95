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
	"agrotrace/internal/pkg/errs"
)

// ReportIssueCommandHandler files an issue against a transport task. A
// vehicle breakdown forces the task to Delayed in the same transaction; the
// owning coordinator is notified after commit.
type ReportIssueCommandHandler struct {
	uowFactory TransportUoWFactory
	dispatcher events.Dispatcher
}

// NewReportIssueCommandHandler creates a handler for issue reports.
func NewReportIssueCommandHandler(
	uowFactory TransportUoWFactory,
	dispatcher events.Dispatcher,
) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the issue report.
func (h ReportIssueCommandHandler) Handle(ctx context.Context, command ReportIssueCommand) error {
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
	if err = services.NewRoleGate().CheckAction(actor, services.ActionReportIssue); err != nil {
		return err
	}

	taskRepo := uow.TransportTaskRepository()
	task, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if !task.IsAssignedTo(actor.ID()) && !task.IsOwnedBy(actor.ID()) {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(services.ActionReportIssue))
	}

	now := time.Now().UTC()
	issue, err := transport.NewTransportIssue(
		kernel.NewUUID(), task.ID(), actor.ID(),
		command.IssueType(), command.Description(), now)
	if err != nil {
		return err
	}
	if err = taskRepo.AddIssue(ctx, issue); err != nil {
		return err
	}

	from := task.Status()
	if command.IssueType().ForcesDelay() {
		if err = task.Delay(); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, task); err != nil {
			return err
		}
	}

	aggregate, err := uow.BatchRepository().Get(ctx, task.BatchID())
	if err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), actor.ID(), actor.Role(),
		string(services.ActionReportIssue),
		"transport_task", task.ID(),
		from.String(), task.Status().String(),
		command.IssueType().String()+": "+command.Description(), now)
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
	coordinatorID := task.CoordinatorID()
	h.dispatcher.Dispatch(ctx, events.Event{
		Kind:          notification.TransportIssueReported,
		BatchID:       aggregate.ID(),
		TrackingCode:  aggregate.TrackingCode().String(),
		NewStatus:     task.Status().String(),
		TaskID:        &taskID,
		CoordinatorID: &coordinatorID,
		Details:       command.Description(),
		OccurredAt:    now,
	})

	return nil
}
