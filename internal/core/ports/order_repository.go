// Package ports defines repository and collaborator interfaces for the order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// conditional write: the row is updated only while its stored status
	// still equals expectedStatus. If another request transitioned the
	// order in the meantime, the update affects zero rows and Update
	// returns an error unwrapping to errs.ErrVersionIsInvalid; the caller
	// must treat its precondition as stale rather than retry blindly.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status. Used by the staff dashboard.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
