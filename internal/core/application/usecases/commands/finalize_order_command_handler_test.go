package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewFinalizeOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewFinalizeOrderCommand(3, 21)

	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, int64(21), cmd.CourierID())
}

func TestNewFinalizeOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewFinalizeOrderCommand(-1, 21)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewFinalizeOrderCommand(3, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mine := int64(21)
	enRoute := restoreTestOrder(t, 3, &mine, order.EnRoute, order.Ship)

	cmd, err := commands.NewFinalizeOrderCommand(3, 21)
	require.NoError(t, err)

	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("Get", ctx, int64(3)).Return(enRoute, nil).Once(),
		mockOrders.On("Update", ctx, enRoute).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinalizeOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, enRoute.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_ForeignCourier(t *testing.T) {
	// Arrange - order belongs to courier 33
	ctx := t.Context()
	rival := int64(33)
	enRoute := restoreTestOrder(t, 3, &rival, order.EnRoute, order.Ship)

	cmd, err := commands.NewFinalizeOrderCommand(3, 21)
	require.NoError(t, err)

	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("Get", ctx, int64(3)).Return(enRoute, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinalizeOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.EnRoute, enRoute.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	// Arrange - claiming never happened, so completing is out of order.
	// A pending order has no assigned courier, which reads as permission
	// denied before the state machine is even consulted.
	ctx := t.Context()
	pending := restoreTestOrder(t, 3, nil, order.Pending, order.Ship)

	cmd, err := commands.NewFinalizeOrderCommand(3, 21)
	require.NoError(t, err)

	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("Get", ctx, int64(3)).Return(pending, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinalizeOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.FinalizeOrderCommand

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewFinalizeOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFinalizeOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
