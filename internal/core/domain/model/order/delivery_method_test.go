package order_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryMethod_Validate(t *testing.T) {
	t.Run("should accept pickup and postal", func(t *testing.T) {
		require.NoError(t, order.Pickup.Validate())
		require.NoError(t, order.Postal.Validate())
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		invalid := []order.DeliveryMethod{
			order.UnknownDeliveryMethod,
			order.DeliveryMethod(-1),
			order.DeliveryMethod(42),
		}

		for _, method := range invalid {
			err := method.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDeliveryMethodFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		method, err := order.DeliveryMethodFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, order.Pickup, method)

		method, err = order.DeliveryMethodFromString("postal")
		require.NoError(t, err)
		assert.Equal(t, order.Postal, method)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "courier", "Pickup", "POSTAL"} {
			method, err := order.DeliveryMethodFromString(name)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.UnknownDeliveryMethod, method)
		}
	})
}

func TestDeliveryMethod_StringAndDisplay(t *testing.T) {
	t.Run("wire names", func(t *testing.T) {
		assert.Equal(t, "pickup", order.Pickup.String())
		assert.Equal(t, "postal", order.Postal.String())
		assert.Equal(t, "unknown", order.UnknownDeliveryMethod.String())
	})

	t.Run("persian display names", func(t *testing.T) {
		assert.Equal(t, "دریافت حضوری", order.Pickup.Display())
		assert.Equal(t, "ارسال پستی", order.Postal.Display())
		assert.Equal(t, "unknown", order.UnknownDeliveryMethod.Display())
	})
}
