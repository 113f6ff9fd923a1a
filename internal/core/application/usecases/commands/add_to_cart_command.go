package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
)

// AddToCartCommand represents a request to add one unit of an item to the
// session cart. The acting role is resolved by the caller from the session;
// stores are rejected here because they never buy.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	itemID     int64
	actingRole account.Role

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add an item to the session cart.
func NewAddToCartCommand(sessionID string, itemID int64, actingRole account.Role) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItemID(itemID),
		cmd.setActingRole(actingRole),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// SessionID returns the session whose cart is modified.
func (c AddToCartCommand) SessionID() string { return c.sessionID }

// ItemID returns the identifier of the item to add.
func (c AddToCartCommand) ItemID() int64 { return c.itemID }

// ActingRole returns the role of the logged-in account.
func (c AddToCartCommand) ActingRole() account.Role { return c.actingRole }

func (c *AddToCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *AddToCartCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemID", fmt.Errorf("%d is not greater than 0", itemID))
	}
	c.itemID = itemID
	return nil
}

func (c *AddToCartCommand) setActingRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actingRole = role
	return nil
}
