package commands_test

import (
	"testing"

	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testWarehouse(t *testing.T, id kernel.UUID) *staff.Warehouse {
	t.Helper()
	w, err := staff.NewWarehouse(id, "Central Warehouse", "Km 12, Ruta 5", 50000)
	require.NoError(t, err)
	return w
}

func TestAssignWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Procurement)
	aggregate := batchInStatus(t, batch.Processed, nil)
	warehouseID := kernel.NewUUID()

	batchRepo, staffRepo, auditRepo, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	staffRepo.On("GetWarehouse", mock.Anything, warehouseID).Return(testWarehouse(t, warehouseID), nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	batchRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAssignWarehouseCommandHandler(factory)
	cmd, err := commands.NewAssignWarehouseCommand(actor.ID(), aggregate.ID(), warehouseID)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, aggregate.WarehouseID())
	assert.True(t, aggregate.WarehouseID().IsEqual(warehouseID))
}

func TestAssignWarehouseCommandHandler_Handle_UnknownWarehouse(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Procurement)
	aggregate := batchInStatus(t, batch.Processed, nil)
	warehouseID := kernel.NewUUID()

	_, staffRepo, _, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	staffRepo.On("GetWarehouse", mock.Anything, warehouseID).
		Return(nil, errs.NewObjectNotFoundError("warehouseId", warehouseID)).Once()

	h := commands.NewAssignWarehouseCommandHandler(factory)
	cmd, err := commands.NewAssignWarehouseCommand(actor.ID(), aggregate.ID(), warehouseID)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, aggregate.WarehouseID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignWarehouseCommandHandler_Handle_ShippedBatchRejected(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Procurement)
	existing := kernel.NewUUID()
	aggregate := batchInStatus(t, batch.Shipped, &existing)
	warehouseID := kernel.NewUUID()

	batchRepo, staffRepo, _, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()
	staffRepo.On("GetWarehouse", mock.Anything, warehouseID).Return(testWarehouse(t, warehouseID), nil).Once()
	batchRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewAssignWarehouseCommandHandler(factory)
	cmd, err := commands.NewAssignWarehouseCommand(actor.ID(), aggregate.ID(), warehouseID)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, aggregate.WarehouseID().IsEqual(existing))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignWarehouseCommandHandler_Handle_FarmerForbidden(t *testing.T) {
	ctx := t.Context()
	actor := activeActor(t, staff.Farmer)
	aggregate := batchInStatus(t, batch.Processed, nil)

	_, staffRepo, _, uow, factory := newBatchHandlerEnv(t)
	staffRepo.On("GetActor", mock.Anything, actor.ID()).Return(actor, nil).Once()

	h := commands.NewAssignWarehouseCommandHandler(factory)
	cmd, err := commands.NewAssignWarehouseCommand(actor.ID(), aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
