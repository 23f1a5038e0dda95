package jobs

import (
	"context"
	"log/slog"

	"agrotrace/internal/core/application/events"
	"agrotrace/internal/core/domain/model/notification"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many stuck rows one relay run picks up so that a
// large backlog cannot monopolize the job.
const relayBatchSize = 100

// NotificationRelayJob periodically re-delivers notifications whose initial
// delivery failed. Rows are persisted undispatched before delivery, so
// anything still undispatched after a crash or a delivery error is picked up
// here. Recipients may see a notification twice; they never miss one.
type NotificationRelayJob struct {
	uowFactory events.UoWFactory
	dispatcher *events.NotificationDispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRelayJob creates the relay job. It shares the dispatcher
// and unit of work factory with the live fan-out path.
func NewNotificationRelayJob(
	uowFactory events.UoWFactory,
	dispatcher *events.NotificationDispatcher,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		cron:       cron.New(),
		logger:     logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job, draining undispatched rows once a minute.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.relay(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every minute)")
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

func (j *NotificationRelayJob) relay(ctx context.Context) {
	pending, err := j.collectUndispatched(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Relaying undelivered notifications", "count", len(pending))
	j.dispatcher.Deliver(ctx, pending)
}

func (j *NotificationRelayJob) collectUndispatched(ctx context.Context) ([]*notification.Notification, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.NotificationRepository().GetAllUndispatched(ctx, relayBatchSize)
}
