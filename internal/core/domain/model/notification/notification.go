package notification

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through one of the package constructors.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewStatusChanged, NewOrderRegistered, or RestoreNotification")

	// ErrNotificationAlreadySent is returned when MarkSent is called twice.
	ErrNotificationAlreadySent = errors.New("notification is already sent")
)

// Notification is a customer-facing message recorded in the transactional
// outbox. It is written in the same transaction as the order change that
// produced it and relayed to the message broker asynchronously, so delivery
// failures can never roll back an order transition.
//
// The title and message are localized Persian text mapped 1:1 from the order
// status that produced the notification.
type Notification struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	status     order.Status
	title      string
	message    string
	createdAt  time.Time
	sentAt     *time.Time

	isConstructed bool
}

// NewStatusChanged creates the outbox entry for an applied status transition.
func NewStatusChanged(orderID, customerID kernel.UUID, status order.Status) (*Notification, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return newNotification(
		orderID,
		customerID,
		status,
		"به‌روزرسانی وضعیت سفارش",
		fmt.Sprintf("وضعیت سفارش #%s به «%s» تغییر یافت.", orderID, status.Display()),
	)
}

// NewOrderRegistered creates the outbox entry for a freshly placed order.
func NewOrderRegistered(orderID, customerID kernel.UUID) (*Notification, error) {
	return newNotification(
		orderID,
		customerID,
		order.PendingPayment,
		"ثبت سفارش",
		fmt.Sprintf("سفارش شما با شماره #%s با موفقیت ثبت شد.", orderID),
	)
}

func newNotification(
	orderID, customerID kernel.UUID,
	status order.Status,
	title, message string,
) (*Notification, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		customerID:    customerID,
		status:        status,
		title:         title,
		message:       message,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
// Used by repositories only.
func RestoreNotification(
	id, orderID, customerID kernel.UUID,
	status order.Status,
	title, message string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), customerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		status:        status,
		title:         title,
		message:       message,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the identifier of the order the notification refers to.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// CustomerID returns the identifier of the addressed customer.
func (n *Notification) CustomerID() kernel.UUID {
	return n.customerID
}

// Status returns the order status the notification announces.
func (n *Notification) Status() order.Status {
	return n.status
}

// Title returns the localized notification title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the localized notification body.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns when the notification was recorded.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the notification was relayed, or nil if still pending.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// IsSent reports whether the notification has been relayed to the broker.
func (n *Notification) IsSent() bool {
	return n.sentAt != nil
}

// MarkSent records the relay time. Fails if the notification is already sent.
func (n *Notification) MarkSent(at time.Time) error {
	if n.sentAt != nil {
		return ErrNotificationAlreadySent
	}
	at = at.UTC()
	n.sentAt = &at
	return nil
}
