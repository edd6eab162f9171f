// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by customer and status.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryMethod int        `gorm:"type:smallint"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status         int        `gorm:"type:smallint;index"`
	Actor          string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
// Both columns are empty for pickup orders without an address.
type AddressDTO struct {
	Text       string
	PostalCode string `gorm:"type:varchar(10)"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	var address AddressDTO
	if addr := order.Address(); addr != nil {
		address = AddressDTO{
			Text:       addr.Text(),
			PostalCode: addr.PostalCode(),
		}
	}

	return OrderDTO{
		ID:             order.ID().Bytes(),
		CustomerID:     order.CustomerID().Bytes(),
		DeliveryMethod: int(order.DeliveryMethod()),
		Address:        address,
		Status:         int(order.Status()),
		Actor:          order.Actor(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and audit actor using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.Address.Text != "" {
		addr, addrErr := kernel.NewAddress(dto.Address.Text, dto.Address.PostalCode)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &addr
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.DeliveryMethod(dto.DeliveryMethod),
		address,
		order.Status(dto.Status),
		dto.Actor,
	)
}
