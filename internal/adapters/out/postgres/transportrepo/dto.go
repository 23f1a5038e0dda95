// Package transportrepo persists transport tasks and their issue reports.
// Task updates are conditional on the loaded status, which is what keeps a
// driver and a vehicle from being double-booked under concurrency.
package transportrepo

import (
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// TaskDTO is the database row for a transport task.
type TaskDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID          uuid.UUID `gorm:"type:uuid;index"`
	CoordinatorID    uuid.UUID `gorm:"type:uuid;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID        *uuid.UUID `gorm:"type:uuid;index"`
	Status           int        `gorm:"index"`
	ScheduledDate    time.Time
	Pickup           string
	Delivery         string
	ActualPickupAt   *time.Time
	ActualDeliveryAt *time.Time
}

// TableName overrides GORM's default naming to use "transport_tasks".
func (TaskDTO) TableName() string {
	return "transport_tasks"
}

// IssueDTO is the database row for an issue reported against a task.
type IssueDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID      uuid.UUID `gorm:"type:uuid;index"`
	ReporterID  uuid.UUID `gorm:"type:uuid"`
	IssueType   int
	Status      int
	Description string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "transport_issues".
func (IssueDTO) TableName() string {
	return "transport_issues"
}

func taskFromDomain(aggregate *transport.TransportTask) TaskDTO {
	var driverID, vehicleID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return TaskDTO{
		ID:               aggregate.ID().Bytes(),
		BatchID:          aggregate.BatchID().Bytes(),
		CoordinatorID:    aggregate.CoordinatorID().Bytes(),
		DriverID:         driverID,
		VehicleID:        vehicleID,
		Status:           int(aggregate.Status()),
		ScheduledDate:    aggregate.ScheduledDate(),
		Pickup:           aggregate.Pickup(),
		Delivery:         aggregate.Delivery(),
		ActualPickupAt:   aggregate.ActualPickupAt(),
		ActualDeliveryAt: aggregate.ActualDeliveryAt(),
	}
}

func taskToDomain(dto TaskDTO) (*transport.TransportTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}
	coordinatorID, err := kernel.UUIDFromBytes(dto.CoordinatorID[:])
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}
	if dto.VehicleID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleID = &vID
	}

	return transport.RestoreTransportTask(
		id, batchID, coordinatorID, driverID, vehicleID,
		transport.Status(dto.Status), dto.ScheduledDate,
		dto.Pickup, dto.Delivery,
		dto.ActualPickupAt, dto.ActualDeliveryAt,
	)
}

func issueFromDomain(issue *transport.TransportIssue) IssueDTO {
	return IssueDTO{
		ID:          issue.ID().Bytes(),
		TaskID:      issue.TaskID().Bytes(),
		ReporterID:  issue.ReporterID().Bytes(),
		IssueType:   int(issue.Type()),
		Status:      int(issue.Status()),
		Description: issue.Description(),
		CreatedAt:   issue.CreatedAt(),
	}
}

func issueToDomain(dto IssueDTO) (*transport.TransportIssue, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}
	reporterID, err := kernel.UUIDFromBytes(dto.ReporterID[:])
	if err != nil {
		return nil, err
	}

	return transport.RestoreTransportIssue(
		id, taskID, reporterID,
		transport.IssueType(dto.IssueType), transport.IssueStatus(dto.Status),
		dto.Description, dto.CreatedAt,
	)
}
