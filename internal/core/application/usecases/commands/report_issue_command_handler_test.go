package commands_test

import (
	"testing"

	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A vehicle breakdown both files the issue and forces the task to Delayed in
// the same transaction; the owning coordinator hears about it afterwards.
func TestReportIssueCommandHandler_Handle_BreakdownForcesDelay(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	driverActor := activeActor(t, staff.Driver)
	coordinatorID := kernel.NewUUID()
	task := assignedTask(t, aggregate.ID(), coordinatorID, driverActor.ID(), transport.InTransit)

	batchRepo, taskRepo, _, _, staffRepo, auditRepo, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, driverActor.ID()).Return(driverActor, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()

	var filed *transport.TransportIssue
	taskRepo.On("AddIssue", mock.Anything, mock.AnythingOfType("*transport.TransportIssue")).
		Run(func(args mock.Arguments) {
			filed = args.Get(1).(*transport.TransportIssue)
		}).Return(nil).Once()
	taskRepo.On("Update", mock.Anything, task).Return(nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	dispatcher := new(MockDispatcher)
	h := commands.NewReportIssueCommandHandler(factory, dispatcher)

	cmd, err := commands.NewReportIssueCommand(
		driverActor.ID(), task.ID(), transport.VehicleBreakdown, "flat tire on route 7")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, transport.Delayed, task.Status())
	require.NotNil(t, filed)
	assert.Equal(t, transport.IssueOpen, filed.Status())

	require.Len(t, dispatcher.Events, 1)
	assert.Equal(t, notification.TransportIssueReported, dispatcher.Events[0].Kind)
	require.NotNil(t, dispatcher.Events[0].CoordinatorID)
	assert.True(t, dispatcher.Events[0].CoordinatorID.IsEqual(coordinatorID))
}

// Non-breakdown issues leave the task status alone.
func TestReportIssueCommandHandler_Handle_DelayIssueKeepsStatus(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	coordinator := activeActor(t, staff.Coordinator)
	task := assignedTask(t, aggregate.ID(), coordinator.ID(), kernel.NewUUID(), transport.InTransit)

	batchRepo, taskRepo, _, _, staffRepo, auditRepo, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, coordinator.ID()).Return(coordinator, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()
	taskRepo.On("AddIssue", mock.Anything, mock.Anything).Return(nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewReportIssueCommandHandler(factory, new(MockDispatcher))

	cmd, err := commands.NewReportIssueCommand(
		coordinator.ID(), task.ID(), transport.TrafficDelay, "roadworks on the highway")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, transport.InTransit, task.Status())
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// A driver can only report against their own task; a coordinator only
// against tasks they scheduled.
func TestReportIssueCommandHandler_Handle_StrangerRejected(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	outsider := activeActor(t, staff.Driver)
	task := assignedTask(t, aggregate.ID(), kernel.NewUUID(), kernel.NewUUID(), transport.InTransit)

	_, taskRepo, _, _, staffRepo, _, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, outsider.ID()).Return(outsider, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()

	h := commands.NewReportIssueCommandHandler(factory, new(MockDispatcher))

	cmd, err := commands.NewReportIssueCommand(
		outsider.ID(), task.ID(), transport.OtherIssue, "crates shifted")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
