package commands_test

import (
	"testing"

	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBatchHandlerEnv(t *testing.T) (*MockBatchRepository, *MockStaffRepository, *MockAuditRepository, *MockTransportUoW, *MockBatchUoWFactory) {
	t.Helper()
	batchRepo := new(MockBatchRepository)
	staffRepo := new(MockStaffRepository)
	auditRepo := new(MockAuditRepository)

	uow := new(MockTransportUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("BatchRepository").Return(batchRepo)
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("AuditRepository").Return(auditRepo)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow)

	return batchRepo, staffRepo, auditRepo, uow, factory
}

func TestUpdateCropStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Procurement)
	aggregate := batchInStatus(t, batch.Harvested, nil)

	batchRepo, staffRepo, auditRepo, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	batchRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	dispatcher := new(MockDispatcher)
	h := commands.NewUpdateCropStatusCommandHandler(factory, dispatcher)

	cmd, err := commands.NewUpdateCropStatusCommand(actor.ID(), aggregate.ID(), batch.Processed, "approved")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, batch.Processed, aggregate.Status())

	require.Len(t, dispatcher.Events, 1)
	assert.Equal(t, notification.BatchProcessed, dispatcher.Events[0].Kind)
	assert.Equal(t, "CB-2025-001", dispatcher.Events[0].TrackingCode)

	batchRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCropStatusCommandHandler_Handle_SilentTransitionSkipsFanOut(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Farmer)
	aggregate := batchInStatus(t, batch.Planted, nil)

	batchRepo, staffRepo, auditRepo, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	batchRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	dispatcher := new(MockDispatcher)
	h := commands.NewUpdateCropStatusCommandHandler(factory, dispatcher)

	cmd, err := commands.NewUpdateCropStatusCommand(actor.ID(), aggregate.ID(), batch.Growing, "")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Empty(t, dispatcher.Events)
}

func TestUpdateCropStatusCommandHandler_Handle_FarmerCannotShip(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Farmer)
	warehouseID := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Processed, &warehouseID)

	batchRepo, staffRepo, _, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	dispatcher := new(MockDispatcher)
	h := commands.NewUpdateCropStatusCommandHandler(factory, dispatcher)

	cmd, err := commands.NewUpdateCropStatusCommand(actor.ID(), aggregate.ID(), batch.Shipped, "")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, batch.Processed, aggregate.Status())
	assert.Empty(t, dispatcher.Events)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCropStatusCommandHandler_Handle_SkipTransitionRejected(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Farmer)
	aggregate := batchInStatus(t, batch.Planted, nil)

	batchRepo, staffRepo, _, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewUpdateCropStatusCommandHandler(factory, new(MockDispatcher))

	cmd, err := commands.NewUpdateCropStatusCommand(actor.ID(), aggregate.ID(), batch.Harvested, "")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, batch.Planted, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCropStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewUpdateCropStatusCommandHandler(new(MockBatchUoWFactory), new(MockDispatcher))
	err := h.Handle(t.Context(), commands.UpdateCropStatusCommand{})
	require.Error(t, err)
}
