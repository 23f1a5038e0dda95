package commands_test

import (
	"testing"

	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	driverActor := activeActor(t, staff.Driver)
	task := assignedTask(t, aggregate.ID(), kernel.NewUUID(), driverActor.ID(), transport.Scheduled)

	batchRepo, taskRepo, _, _, staffRepo, auditRepo, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, driverActor.ID()).Return(driverActor, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	taskRepo.On("Update", mock.Anything, task).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	cmd, err := commands.NewConfirmPickupCommand(driverActor.ID(), task.ID(), "CB-2025-001")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, transport.InTransit, task.Status())
	assert.NotNil(t, task.ActualPickupAt())
	taskRepo.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_CodeMismatch(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	driverActor := activeActor(t, staff.Driver)
	task := assignedTask(t, aggregate.ID(), kernel.NewUUID(), driverActor.ID(), transport.Scheduled)

	batchRepo, taskRepo, _, _, staffRepo, _, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, driverActor.ID()).Return(driverActor, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	cmd, err := commands.NewConfirmPickupCommand(driverActor.ID(), task.ID(), "CB-0000-000")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCodeMismatch)
	assert.Equal(t, transport.Scheduled, task.Status())
	assert.Nil(t, task.ActualPickupAt())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPickupCommandHandler_Handle_AlreadyInTransit(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &warehouseID)
	driverActor := activeActor(t, staff.Driver)
	task := assignedTask(t, aggregate.ID(), kernel.NewUUID(), driverActor.ID(), transport.InTransit)

	batchRepo, taskRepo, _, _, staffRepo, _, uow, factory := newTransportEnv(t)
	staffRepo.On("GetActor", mock.Anything, driverActor.ID()).Return(driverActor, nil).Once()
	taskRepo.On("Get", mock.Anything, task.ID()).Return(task, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	cmd, err := commands.NewConfirmPickupCommand(driverActor.ID(), task.ID(), "CB-2025-001")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
