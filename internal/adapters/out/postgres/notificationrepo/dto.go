// Package notificationrepo persists the notification outbox. Entries are
// written in the same transaction as the order change that produced them and
// drained asynchronously by the relay job.
package notificationrepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/notification"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for outbox entries.
// The sent_at column is NULL while the entry is pending; the relay job
// selects on it and stamps it after a successful publish.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Status     int       `gorm:"type:smallint"`
	Title      string
	Message    string
	CreatedAt  time.Time  `gorm:"index"`
	SentAt     *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox entries.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().Bytes(),
		OrderID:    n.OrderID().Bytes(),
		CustomerID: n.CustomerID().Bytes(),
		Status:     int(n.Status()),
		Title:      n.Title(),
		Message:    n.Message(),
		CreatedAt:  n.CreatedAt(),
		SentAt:     n.SentAt(),
	}
}

// toDomain converts a database DTO to a notification aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		orderID,
		customerID,
		order.Status(dto.Status),
		dto.Title,
		dto.Message,
		dto.CreatedAt,
		dto.SentAt,
	)
}
