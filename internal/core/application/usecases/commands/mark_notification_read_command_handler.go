package commands

import (
	"context"

	"agrotrace/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler flips a notification's read flag.
// Only the recipient may mark their own notifications.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read receipts.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read receipt.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, command MarkNotificationReadCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	n, err := notificationRepo.Get(ctx, command.NotificationID())
	if err != nil {
		return err
	}
	if !n.RecipientID().IsEqual(command.ActorID()) {
		return errs.NewUnauthorizedError("recipient", "mark_notification_read")
	}
	if n.IsRead() {
		return uow.Commit(ctx)
	}

	n.MarkRead()
	if err = notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
