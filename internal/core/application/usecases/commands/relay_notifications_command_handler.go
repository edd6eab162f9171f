package commands

import (
	"context"
	"errors"
	"time"

	"coffeeshop/internal/core/ports"
)

// RelayNotificationsCommandHandler drains the notification outbox.
// Publishes pending entries to the broker and marks successes as sent.
// Publish failures are soft: the failed entry stays pending, the rest of the
// batch is still processed, and the joined errors are returned for logging.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.StatusChangedPublisher
}

// NewRelayNotificationsCommandHandler creates a handler for outbox draining.
// Requires a NotificationUoWFactory and the broker publisher.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.StatusChangedPublisher,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one relay run. Sent marks are committed even when some
// publishes fail, so successfully delivered entries are never republished.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.NotificationRepository()

	pending, err := outbox.GetUnsent(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	var publishErrs []error
	for _, entry := range pending {
		if publishErr := h.publisher.Publish(ctx, entry); publishErr != nil {
			publishErrs = append(publishErrs, publishErr)
			continue
		}

		sentAt := time.Now().UTC()
		if markErr := entry.MarkSent(sentAt); markErr != nil {
			publishErrs = append(publishErrs, markErr)
			continue
		}

		if markErr := outbox.MarkSent(ctx, entry.ID(), sentAt); markErr != nil {
			return markErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return errors.Join(publishErrs...)
}
