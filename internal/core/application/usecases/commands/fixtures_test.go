package commands_test

import (
	"testing"
	"time"

	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"

	"github.com/stretchr/testify/require"
)

var transportDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func activeActor(t *testing.T, role staff.Role) staff.Actor {
	t.Helper()
	actor, err := staff.NewActor(kernel.NewUUID(), role, nil, true)
	require.NoError(t, err)
	return actor
}

func batchInStatus(t *testing.T, status batch.Status, warehouseID *kernel.UUID) *batch.CropBatch {
	t.Helper()
	code, err := kernel.NewTrackingCode("CB-2025-001")
	require.NoError(t, err)
	b, err := batch.RestoreCropBatch(
		kernel.NewUUID(), code, "Coffee", "Arabica", 120, status,
		kernel.NewUUID(), warehouseID,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		nil, "",
	)
	require.NoError(t, err)
	return b
}

func freshDriver(t *testing.T) *resource.Driver {
	t.Helper()
	d, err := resource.NewDriver(kernel.NewUUID(), "Santos", "", "DL-1")
	require.NoError(t, err)
	return d
}

func freshVehicle(t *testing.T) *resource.Vehicle {
	t.Helper()
	v, err := resource.NewVehicle(kernel.NewUUID(), "HAA-1234", "truck", 3500)
	require.NoError(t, err)
	return v
}

// assignedTask builds a task owned by coordinatorID, assigned to driverID and
// a fresh vehicle, in the given status.
func assignedTask(
	t *testing.T,
	batchID kernel.UUID,
	coordinatorID kernel.UUID,
	driverID kernel.UUID,
	status transport.Status,
) *transport.TransportTask {
	t.Helper()
	task, err := transport.NewTransportTask(
		kernel.NewUUID(), batchID, coordinatorID, transportDate, "farm", "warehouse")
	require.NoError(t, err)
	require.NoError(t, task.AssignResources(driverID, kernel.NewUUID()))

	switch status {
	case transport.Scheduled:
	case transport.InTransit:
		require.NoError(t, task.ConfirmPickup(transportDate))
	case transport.Delayed:
		require.NoError(t, task.ConfirmPickup(transportDate))
		require.NoError(t, task.Delay())
	default:
		t.Fatalf("unsupported fixture status %s", status)
	}
	return task
}

// noTasks is the empty active-task result used by scheduling expectations.
func noTasks() []*transport.TransportTask {
	return nil
}
