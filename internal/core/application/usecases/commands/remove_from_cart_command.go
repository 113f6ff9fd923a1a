package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRemoveFromCartCommandIsNotConstructed = errors.New(
		"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
	)
)

// RemoveFromCartCommand represents a request to drop one unit of an item
// from the session cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	itemID    int64

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove an item from the cart.
func NewRemoveFromCartCommand(sessionID string, itemID int64) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// SessionID returns the session whose cart is modified.
func (c RemoveFromCartCommand) SessionID() string { return c.sessionID }

// ItemID returns the identifier of the item to remove.
func (c RemoveFromCartCommand) ItemID() int64 { return c.itemID }

func (c *RemoveFromCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *RemoveFromCartCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemID", fmt.Errorf("%d is not greater than 0", itemID))
	}
	c.itemID = itemID
	return nil
}
