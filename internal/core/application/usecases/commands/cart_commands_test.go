package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveFromCartCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRemoveFromCartCommand("sess-1", 7)

	require.NoError(t, err)
	assert.Equal(t, "sess-1", cmd.SessionID())
	assert.Equal(t, int64(7), cmd.ItemID())
}

func TestNewRemoveFromCartCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRemoveFromCartCommand("", 7)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRemoveFromCartCommand("sess-1", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRemoveFromCartCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRemoveFromCartCommand("sess-1", 7)
	require.NoError(t, err)

	mockCart := new(MockCartStore)
	mockCart.On("Remove", ctx, "sess-1", int64(7)).Return(nil).Once()

	handler := commands.NewRemoveFromCartCommandHandler(mockCart)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestRemoveFromCartCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.RemoveFromCartCommand

	mockCart := new(MockCartStore)
	handler := commands.NewRemoveFromCartCommandHandler(mockCart)

	err := handler.Handle(ctx, invalidCmd)

	require.ErrorIs(t, err, commands.ErrRemoveFromCartCommandIsNotConstructed)
	mockCart.AssertExpectations(t)
}

func TestNewClearCartCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewClearCartCommand("sess-1")

	require.NoError(t, err)
	assert.Equal(t, "sess-1", cmd.SessionID())
}

func TestNewClearCartCommand_EmptySession(t *testing.T) {
	_, err := commands.NewClearCartCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewClearCartCommand("sess-1")
	require.NoError(t, err)

	mockCart := new(MockCartStore)
	mockCart.On("Clear", ctx, "sess-1").Return(nil).Once()

	handler := commands.NewClearCartCommandHandler(mockCart)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_StoreError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewClearCartCommand("sess-1")
	require.NoError(t, err)

	expectedError := errors.New("redis unavailable")
	mockCart := new(MockCartStore)
	mockCart.On("Clear", ctx, "sess-1").Return(expectedError).Once()

	handler := commands.NewClearCartCommandHandler(mockCart)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockCart.AssertExpectations(t)
}
