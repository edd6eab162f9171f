package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-progress orders from the database.
// Filters out terminal orders to show the remaining workload.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Results are sorted by order ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := make([]int, 0, len(order.TerminalStatuses()))
	for _, s := range order.TerminalStatuses() {
		terminal = append(terminal, int(s))
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_method,
			status
		FROM orders
		WHERE status NOT IN ?
		ORDER BY id
	`, terminal).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID
		var deliveryMethod, status int

		if err = rows.Scan(&id, &customerID, &deliveryMethod, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus := order.Status(status)
		if err = orderStatus.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			OrderID:        orderID,
			CustomerID:     ownerID,
			DeliveryMethod: order.DeliveryMethod(deliveryMethod),
			Status:         orderStatus,
			StatusDisplay:  orderStatus.Display(),
			StatusColor:    orderStatus.Color(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
