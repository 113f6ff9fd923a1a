package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, itemID int64, quantity int, unitPrice float64) order.Line {
	t.Helper()
	l, err := order.NewLine(itemID, quantity, unitPrice)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	t.Run("should create valid line", func(t *testing.T) {
		l, err := order.NewLine(3, 2, 9.5)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, int64(3), l.ItemID())
		assert.Equal(t, 2, l.Quantity())
		assert.InDelta(t, 9.5, l.UnitPrice(), 0.0001)
		assert.InDelta(t, 19.0, l.Subtotal(), 0.0001)
	})

	t.Run("should fail with invalid item id", func(t *testing.T) {
		_, err := order.NewLine(0, 1, 10)
		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewLine(3, 0, 10)
		require.Error(t, err)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewLine(3, 1, -1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var l order.Line
		require.Error(t, l.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with snapshot total", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 1, 1, 10),
			mustLine(t, 1, 1, 10),
		}

		o, err := order.NewOrder(5, order.Ship, "cash", lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, int64(5), o.BuyerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Ship, o.Mode())
		assert.Equal(t, "cash", o.PaymentMethod())
		assert.InDelta(t, 20.0, o.Total(), 0.0001)
		assert.Len(t, o.Lines(), 2)
		assert.Nil(t, o.Courier())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should fail with no lines", func(t *testing.T) {
		o, err := order.NewOrder(5, order.Ship, "cash", nil)

		require.ErrorIs(t, err, errs.ErrCartIsEmpty)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid buyer", func(t *testing.T) {
		o, err := order.NewOrder(0, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid mode", func(t *testing.T) {
		o, err := order.NewOrder(5, order.ModeUnknown, "cash", []order.Line{mustLine(t, 1, 1, 10)})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty payment method", func(t *testing.T) {
		o, err := order.NewOrder(5, order.Ship, "", []order.Line{mustLine(t, 1, 1, 10)})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with a zero-value line", func(t *testing.T) {
		o, err := order.NewOrder(5, order.Ship, "cash", []order.Line{{}})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	lines := []order.Line{mustLine(t, 1, 1, 10)}
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore en_route order with courier", func(t *testing.T) {
		courierID := int64(9)
		o, err := order.RestoreOrder(4, 5, &courierID, order.EnRoute, order.Ship, "cash", 10, created, lines)

		require.NoError(t, err)
		assert.Equal(t, int64(4), o.ID())
		assert.Equal(t, order.EnRoute, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, int64(9), *o.Courier())
		assert.Equal(t, created, o.CreatedAt())
	})

	t.Run("should reject pending order with courier", func(t *testing.T) {
		courierID := int64(9)
		o, err := order.RestoreOrder(4, 5, &courierID, order.Pending, order.Ship, "cash", 10, created, lines)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject en_route order without courier", func(t *testing.T) {
		o, err := order.RestoreOrder(4, 5, nil, order.EnRoute, order.Ship, "cash", 10, created, lines)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("restored total is the stored snapshot", func(t *testing.T) {
		o, err := order.RestoreOrder(4, 5, nil, order.Pending, order.Ship, "cash", 99, created, lines)

		require.NoError(t, err)
		assert.InDelta(t, 99.0, o.Total(), 0.0001)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("pending order can be claimed", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})

		require.NoError(t, o.Accept(9))
		assert.Equal(t, order.EnRoute, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, int64(9), *o.Courier())
	})

	t.Run("claimed order cannot be claimed again", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})
		require.NoError(t, o.Accept(9))

		err := o.Accept(10)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, int64(9), *o.Courier())
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})

		require.Error(t, o.Accept(0))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("assigned courier completes the order", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})
		require.NoError(t, o.Accept(9))

		require.NoError(t, o.Complete(9))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("another courier is denied", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})
		require.NoError(t, o.Accept(9))

		err := o.Complete(10)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, order.EnRoute, o.Status())
	})

	t.Run("pending order cannot be completed", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})

		err := o.Complete(9)
		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		o, _ := order.NewOrder(5, order.Ship, "cash", []order.Line{mustLine(t, 1, 1, 10)})
		require.NoError(t, o.Accept(9))
		require.NoError(t, o.Complete(9))

		err := o.Complete(9)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}
