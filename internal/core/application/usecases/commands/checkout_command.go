package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a buyer's request to turn the session cart into
// an order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(sessionID, buyerID, order.Ship, "card")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(cartStore, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID     string
	buyerID       int64
	mode          order.DeliveryMode
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the session cart.
func NewCheckoutCommand(
	sessionID string,
	buyerID int64,
	mode order.DeliveryMode,
	paymentMethod string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setBuyerID(buyerID),
		cmd.setMode(mode),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// SessionID returns the session whose cart is checked out.
func (c CheckoutCommand) SessionID() string { return c.sessionID }

// BuyerID returns the buying account's identifier.
func (c CheckoutCommand) BuyerID() int64 { return c.buyerID }

// Mode returns the chosen delivery mode.
func (c CheckoutCommand) Mode() order.DeliveryMode { return c.mode }

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() string { return c.paymentMethod }

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCommand) setBuyerID(buyerID int64) error {
	if buyerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("buyerID", fmt.Errorf("%d is not greater than 0", buyerID))
	}
	c.buyerID = buyerID
	return nil
}

func (c *CheckoutCommand) setMode(mode order.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	c.mode = mode
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}
