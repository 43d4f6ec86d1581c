package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const dispatchBatchSize = 100

// notificationOutbox is the drain side of the outbox: stored events waiting
// to be published.
type notificationOutbox interface {
	GetUnsent(ctx context.Context, limit int) ([]outboxrepo.Message, error)
	MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error
}

// NotificationDispatchJob drains the notification outbox to the notifier.
// Runs every five seconds; a message that fails to publish stays unsent and
// is retried on the next tick.
type NotificationDispatchJob struct {
	outbox   notificationOutbox
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationDispatchJob creates a job that publishes stored events.
func NewNotificationDispatchJob(
	outbox notificationOutbox,
	notifier ports.Notifier,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		outbox:   outbox,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatchBatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

func (j *NotificationDispatchJob) dispatchBatch(ctx context.Context) error {
	messages, err := j.outbox.GetUnsent(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.notifier.Notify(ctx, message.Event); err != nil {
			j.logger.WarnContext(ctx, "Failed to publish notification, will retry",
				"messageId", message.ID.String(),
				"kind", string(message.Event.Kind),
				"error", err)
			continue
		}

		if err = j.outbox.MarkSent(ctx, message.ID, time.Now().UTC()); err != nil {
			return err
		}
	}

	return nil
}
