package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many outbox entries one relay run processes.
const relayBatchSize = 50

// NotificationRelayJob drains the notification outbox on a schedule.
// Runs every five seconds; entries whose publish failed stay pending and are
// picked up again on the next run.
type NotificationRelayJob struct {
	handler commands.RelayNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying notifications.
// Uses RelayNotificationsCommandHandler to publish pending outbox entries.
func NewNotificationRelayJob(
	handler commands.RelayNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job to run every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRelayNotificationsCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay command is invalid", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Soft failure: unsent entries stay in the outbox for the next run
			j.logger.WarnContext(ctx, "Notification relay run left entries pending", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every 5 seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
