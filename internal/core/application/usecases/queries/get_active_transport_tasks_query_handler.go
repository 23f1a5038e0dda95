package queries

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveTransportTasksQueryHandler reads active tasks joined with their
// batch's tracking code.
type GetActiveTransportTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveTransportTasksQueryHandler creates a handler for the active
// task monitoring view.
func NewGetActiveTransportTasksQueryHandler(db *gorm.DB) GetActiveTransportTasksQueryHandler {
	return GetActiveTransportTasksQueryHandler{db: db}
}

// Handle returns all tasks in Scheduled, InTransit or Delayed status,
// ordered by scheduled date.
func (h GetActiveTransportTasksQueryHandler) Handle(
	ctx context.Context,
	query GetActiveTransportTasksQuery,
) ([]GetActiveTransportTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetActiveTransportTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.batch_id,
			b.tracking_code,
			t.status,
			t.scheduled_date,
			t.pickup,
			t.delivery,
			t.driver_id,
			t.vehicle_id
		FROM transport_tasks t
		JOIN crop_batches b ON b.id = t.batch_id
		WHERE t.status IN (?, ?, ?)
		ORDER BY t.scheduled_date, t.id
	`, transport.Scheduled, transport.InTransit, transport.Delayed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveTransportTasksQueryResponse
		var id, batchID uuid.UUID
		var driverID, vehicleID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&batchID,
			&resp.TrackingCode,
			&status,
			&resp.ScheduledDate,
			&resp.Pickup,
			&resp.Delivery,
			&driverID,
			&vehicleID,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.BatchID, err = kernel.UUIDFromBytes(batchID[:])
		if err != nil {
			return nil, err
		}
		if driverID != nil {
			dID, dErr := kernel.UUIDFromBytes((*driverID)[:])
			if dErr != nil {
				return nil, dErr
			}
			resp.DriverID = &dID
		}
		if vehicleID != nil {
			vID, vErr := kernel.UUIDFromBytes((*vehicleID)[:])
			if vErr != nil {
				return nil, vErr
			}
			resp.VehicleID = &vID
		}
		resp.Status = transport.Status(status).String()
		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
