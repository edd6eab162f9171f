package ports

import (
	"context"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the notification
// outbox. Entries are written in the same transaction as the order change that
// produced them and drained asynchronously by the relay job.
type NotificationRepository interface {
	// Add persists a new outbox entry.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetUnsent retrieves up to limit pending entries, oldest first.
	GetUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkSent records the relay time of an entry. Entries already marked
	// sent are not updated again.
	MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error
}
