package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdjustStockCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewAdjustStockCommand(7, 25, 42)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.ItemID())
	assert.Equal(t, 25, cmd.NewStock())
	assert.Equal(t, int64(42), cmd.ActingAccountID())
}

func TestNewAdjustStockCommand_NegativeStockAccepted(t *testing.T) {
	// The range check belongs to the aggregate, not the command.
	cmd, err := commands.NewAdjustStockCommand(7, -1, 42)

	require.NoError(t, err)
	assert.Equal(t, -1, cmd.NewStock())
}

func TestNewAdjustStockCommand_InvalidIdentifiers(t *testing.T) {
	testCases := []struct {
		name    string
		itemID  int64
		actorID int64
	}{
		{name: "zero item", itemID: 0, actorID: 42},
		{name: "negative item", itemID: -3, actorID: 42},
		{name: "zero actor", itemID: 7, actorID: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewAdjustStockCommand(tc.itemID, 10, tc.actorID)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestAdjustStockCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AdjustStockCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdjustStockCommandIsNotConstructed)
}
