package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Rows are written inside the business transaction that produced the event;
// the dispatched flag is flipped afterwards, outside that transaction.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists the read or dispatched flag of an existing notification.
	Update(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllUndispatched retrieves notifications whose delivery has not been
	// confirmed, oldest first. The relay job drains these.
	GetAllUndispatched(ctx context.Context, limit int) ([]*notification.Notification, error)
}
