// Package queries contains read-only operations for retrieving system state.
// Query handlers bypass the domain model and read projections straight from
// the database, keeping the read path cheap.
package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves the current status of a single order.
// Backs the customer-facing status poll endpoint.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//	fmt.Printf("Order is %s\n", status.StatusDisplay)
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the given order's status.
// Validates that the order ID is a properly constructed UUID.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	query := GetOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderStatusQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderStatusQueryResponse is the status projection served to customers.
// Carries the machine-readable status plus the localized display text and
// badge color, and flags terminal statuses so clients can stop polling.
type GetOrderStatusQueryResponse struct {
	OrderID       kernel.UUID
	CustomerID    kernel.UUID
	Status        order.Status
	StatusDisplay string
	StatusColor   string
	Terminal      bool
}
