package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler serves the status poll for a single order.
// Reads the projection directly from the orders table.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status query. Returns an ObjectNotFoundError when no
// order with the requested ID exists.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderStatusQueryResponse{}, err
		}
		return GetOrderStatusQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var id, customerID uuid.UUID
	var status int

	if err = rows.Scan(&id, &customerID, &status); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		OrderID:       orderID,
		CustomerID:    ownerID,
		Status:        orderStatus,
		StatusDisplay: orderStatus.Display(),
		StatusColor:   orderStatus.Color(),
		Terminal:      orderStatus.IsTerminal(),
	}, nil
}
