package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
)

// AdjustStockCommand represents a store's request to set an item's stock level.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	itemID          int64
	newStock        int
	actingAccountID int64

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to set an item's stock level.
// The range check on newStock belongs to the aggregate; here only the
// identifiers are validated.
func NewAdjustStockCommand(itemID int64, newStock int, actingAccountID int64) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActingAccountID(actingAccountID),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	cmd.newStock = newStock
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to adjust.
func (c AdjustStockCommand) ItemID() int64 { return c.itemID }

// NewStock returns the requested stock level.
func (c AdjustStockCommand) NewStock() int { return c.newStock }

// ActingAccountID returns the identifier of the store performing the change.
func (c AdjustStockCommand) ActingAccountID() int64 { return c.actingAccountID }

func (c *AdjustStockCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemID", fmt.Errorf("%d is not greater than 0", itemID))
	}
	c.itemID = itemID
	return nil
}

func (c *AdjustStockCommand) setActingAccountID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actingAccountID", fmt.Errorf("%d is not greater than 0", id))
	}
	c.actingAccountID = id
	return nil
}
