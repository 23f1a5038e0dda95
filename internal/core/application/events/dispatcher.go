package events

import (
	"context"
	"fmt"
	"log/slog"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/ports"
)

// Dispatcher consumes committed events and fans them out to recipients.
// Implementations are best-effort: Dispatch never returns an error.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

// UoW is the transaction surface the dispatcher needs: recipient lookup and
// notification writes. The dispatcher opens its own short transactions and
// never shares one with a command handler.
type UoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	StaffRepository() ports.StaffRepository
	NotificationRepository() ports.NotificationRepository
}

// UoWFactory creates dispatcher units of work.
type UoWFactory interface {
	Create() UoW
}

// NotificationDispatcher resolves recipients per event kind, persists one
// notification per recipient and delivers them. Persisting and delivering
// are separate steps: rows are committed undispatched first, so a delivery
// failure leaves a row for the relay job to retry.
type NotificationDispatcher struct {
	uowFactory UoWFactory
	log        *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher.
func NewNotificationDispatcher(uowFactory UoWFactory, log *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{uowFactory: uowFactory, log: log}
}

// Dispatch fans the event out. Every failure is logged and swallowed; the
// business transition that produced the event has already committed.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, event Event) {
	notifications, err := d.persist(ctx, event)
	if err != nil {
		d.log.WarnContext(ctx, "notification fan-out failed",
			"event", event.Kind.String(),
			"batchId", event.BatchID.String(),
			"error", err)
		return
	}

	d.Deliver(ctx, notifications)
}

// Deliver sends persisted notifications and marks them dispatched. The relay
// job calls this directly for rows whose earlier delivery failed.
func (d *NotificationDispatcher) Deliver(ctx context.Context, notifications []*notification.Notification) {
	for _, n := range notifications {
		d.log.InfoContext(ctx, "notification delivered",
			"notificationId", n.ID().String(),
			"recipientId", n.RecipientID().String(),
			"type", n.Kind().String(),
			"title", n.Title())

		n.MarkDispatched()
		if err := d.markDispatched(ctx, n); err != nil {
			d.log.WarnContext(ctx, "failed to mark notification dispatched",
				"notificationId", n.ID().String(),
				"error", err)
		}
	}
}

func (d *NotificationDispatcher) persist(ctx context.Context, event Event) ([]*notification.Notification, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipients, err := d.resolveRecipients(ctx, uow.StaffRepository(), event)
	if err != nil {
		return nil, err
	}

	title, message := composeMessage(event)
	meta := notification.Metadata{
		BatchID:      event.BatchID.String(),
		TrackingCode: event.TrackingCode,
	}
	if event.TaskID != nil {
		meta.TaskID = event.TaskID.String()
	}

	notificationRepo := uow.NotificationRepository()
	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		n, err := notification.NewNotification(
			kernel.NewUUID(), recipient.ID(), event.Kind, title, message, meta, event.OccurredAt)
		if err != nil {
			return nil, err
		}
		if err = notificationRepo.Add(ctx, n); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (d *NotificationDispatcher) markDispatched(ctx context.Context, n *notification.Notification) error {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Update(ctx, n); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// resolveRecipients computes the recipient set for one event. Deactivated
// profiles never receive notifications; the staff queries exclude them, and
// directly addressed actors are checked here.
func (d *NotificationDispatcher) resolveRecipients(
	ctx context.Context,
	staffRepo ports.StaffRepository,
	event Event,
) ([]staff.Actor, error) {
	var recipients []staff.Actor

	switch event.Kind {
	case notification.BatchReadyForHarvest, notification.BatchProcessed:
		byRole, err := staffRepo.GetActiveByRole(ctx, staff.Procurement)
		if err != nil {
			return nil, err
		}
		recipients = byRole

	case notification.BatchShipped:
		coordinators, err := staffRepo.GetActiveByRole(ctx, staff.Coordinator)
		if err != nil {
			return nil, err
		}
		recipients = coordinators
		if event.WarehouseID != nil {
			managers, err := staffRepo.GetActiveManagersByWarehouse(ctx, *event.WarehouseID)
			if err != nil {
				return nil, err
			}
			recipients = append(recipients, managers...)
		}

	case notification.TransportScheduled:
		if event.CoordinatorID != nil {
			coordinator, err := staffRepo.GetActor(ctx, *event.CoordinatorID)
			if err != nil {
				return nil, err
			}
			if coordinator.IsActive() {
				recipients = append(recipients, coordinator)
			}
		}
		if event.WarehouseID != nil {
			managers, err := staffRepo.GetActiveManagersByWarehouse(ctx, *event.WarehouseID)
			if err != nil {
				return nil, err
			}
			recipients = append(recipients, managers...)
		}

	case notification.TransportIssueReported:
		if event.CoordinatorID != nil {
			coordinator, err := staffRepo.GetActor(ctx, *event.CoordinatorID)
			if err != nil {
				return nil, err
			}
			if coordinator.IsActive() {
				recipients = append(recipients, coordinator)
			}
		}
	}

	return dedupe(recipients), nil
}

// dedupe drops repeated actors so one event never writes two rows for the
// same recipient, e.g. a coordinator who also manages the destination.
func dedupe(actors []staff.Actor) []staff.Actor {
	seen := make(map[string]bool, len(actors))
	result := actors[:0]
	for _, a := range actors {
		if seen[a.ID().String()] {
			continue
		}
		seen[a.ID().String()] = true
		result = append(result, a)
	}
	return result
}

func composeMessage(event Event) (title, message string) {
	switch event.Kind {
	case notification.BatchReadyForHarvest:
		return "Batch ready for harvest",
			fmt.Sprintf("Batch %s is ready for harvest", event.TrackingCode)
	case notification.BatchProcessed:
		return "Batch processed",
			fmt.Sprintf("Batch %s has been processed and awaits shipping", event.TrackingCode)
	case notification.BatchShipped:
		return "Batch shipped",
			fmt.Sprintf("Batch %s has been shipped to your warehouse", event.TrackingCode)
	case notification.TransportScheduled:
		return "Transport scheduled",
			fmt.Sprintf("Transport for batch %s is scheduled for %s",
				event.TrackingCode, event.Details)
	case notification.TransportIssueReported:
		return "Transport issue reported",
			fmt.Sprintf("An issue was reported for batch %s: %s",
				event.TrackingCode, event.Details)
	}
	return event.Kind.String(), fmt.Sprintf("Batch %s changed status to %s",
		event.TrackingCode, event.NewStatus)
}
