// Package events implements the notification fan-out step. Command handlers
// emit an Event after their transaction commits; the dispatcher resolves the
// recipient set, writes one notification per recipient and delivers them.
// The two failure domains stay separate: nothing in this package can roll
// back or fail the business transition that produced the event.
package events

import (
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
)

// Event is one committed state change worth telling someone about.
type Event struct {
	// Kind selects the recipient rule and the message template.
	Kind notification.Type

	// BatchID and TrackingCode identify the batch the change happened to.
	BatchID      kernel.UUID
	TrackingCode string

	// NewStatus is the batch or task status after the transition, in wire form.
	NewStatus string

	// TaskID is set for transport events.
	TaskID *kernel.UUID

	// WarehouseID scopes warehouse-manager recipients to one destination.
	WarehouseID *kernel.UUID

	// CoordinatorID is the owning coordinator for transport events.
	CoordinatorID *kernel.UUID

	// Details carries free-form context, an issue description or a
	// scheduled date in wire form.
	Details string

	OccurredAt time.Time
}
