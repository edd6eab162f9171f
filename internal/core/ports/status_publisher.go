package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/notification"
)

// StatusChangedPublisher delivers outbox notifications to the message broker.
// Publish failures are soft: the relay job logs them and leaves the entry
// unsent for the next run, never affecting the order transition that
// produced it.
type StatusChangedPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
