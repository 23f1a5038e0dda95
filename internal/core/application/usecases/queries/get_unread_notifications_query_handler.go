package queries

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnreadNotificationsQueryHandler reads unread notifications straight
// from the notifications table.
type GetUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadNotificationsQueryHandler creates a handler for inbox reads.
func NewGetUnreadNotificationsQueryHandler(db *gorm.DB) GetUnreadNotificationsQueryHandler {
	return GetUnreadNotificationsQueryHandler{db: db}
}

// Handle returns the recipient's unread notifications, newest first.
func (h GetUnreadNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadNotificationsQuery,
) ([]GetUnreadNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetUnreadNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			title,
			message,
			batch_id,
			tracking_code,
			task_id,
			created_at
		FROM notifications
		WHERE recipient_id = ? AND read = false
		ORDER BY created_at DESC
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnreadNotificationsQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&kind,
			&resp.Title,
			&resp.Message,
			&resp.BatchID,
			&resp.TrackingCode,
			&resp.TaskID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID
		resp.Kind = notification.Type(kind).String()
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
