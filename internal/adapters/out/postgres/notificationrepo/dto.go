// Package notificationrepo persists fan-out notifications. Rows double as
// the delivery backlog: the relay job drains undispatched rows, so a failed
// delivery is retried on the next tick instead of being lost.
package notificationrepo

import (
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database row for a notification.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID  uuid.UUID `gorm:"type:uuid;index"`
	Kind         int
	Title        string
	Message      string
	BatchID      string `gorm:"size:36"`
	TrackingCode string `gorm:"size:32"`
	TaskID       string `gorm:"size:36"`
	Read         bool
	Dispatched   bool `gorm:"index"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           n.ID().Bytes(),
		RecipientID:  n.RecipientID().Bytes(),
		Kind:         int(n.Kind()),
		Title:        n.Title(),
		Message:      n.Message(),
		BatchID:      n.Meta().BatchID,
		TrackingCode: n.Meta().TrackingCode,
		TaskID:       n.Meta().TaskID,
		Read:         n.IsRead(),
		Dispatched:   n.IsDispatched(),
		CreatedAt:    n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	meta := notification.Metadata{
		BatchID:      dto.BatchID,
		TrackingCode: dto.TrackingCode,
		TaskID:       dto.TaskID,
	}

	return notification.RestoreNotification(
		id, recipientID, notification.Type(dto.Kind),
		dto.Title, dto.Message, meta,
		dto.Read, dto.Dispatched, dto.CreatedAt,
	)
}
