package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidPickup(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, customerID, order.Pickup, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, order.Pickup, cmd.DeliveryMethod())
	assert.Nil(t, cmd.Address())
}

func TestNewCreateOrderCommand_ValidPostal(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	addr, err := kernel.NewAddress("Tehran, Valiasr St. 12", "1234567890")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, customerID, order.Postal, &addr)
	require.NoError(t, err)
	assert.Equal(t, order.Postal, cmd.DeliveryMethod())
	require.NotNil(t, cmd.Address())
	assert.True(t, cmd.Address().IsEqual(addr))
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), order.Pickup, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, order.Pickup, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidDeliveryMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.UnknownDeliveryMethod, nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidAddress(t *testing.T) {
	invalidAddr := kernel.Address{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Postal, &invalidAddr)
	require.Error(t, err)
}
