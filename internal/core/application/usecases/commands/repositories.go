// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: role check, validation,
// transaction management, audit emission and post-commit event dispatch.
package commands

import (
	"context"

	"agrotrace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// TaskRepoFactory provides access to the transport task repository within a transaction.
	TaskRepoFactory interface {
		TransportTaskRepository() ports.TransportTaskRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// NotificationRepoFactory provides access to the notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// BatchUoW manages transactions for batch-only workflow operations:
	// status updates and warehouse assignment.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
		StaffRepoFactory
		AuditRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// TransportUoW manages transactions spanning the batch, task and resource
	// aggregates. Scheduling and lifecycle commands need all of them: a
	// partially applied transition would leave a driver marked busy with no
	// task, or a batch marked shipped with no task record.
	TransportUoW interface {
		TxManager
		BatchRepoFactory
		TaskRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		StaffRepoFactory
		AuditRepoFactory
	}

	// TransportUoWFactory creates new transport unit of work instances.
	TransportUoWFactory interface {
		Create() TransportUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		StaffRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
