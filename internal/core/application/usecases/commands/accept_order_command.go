package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents a courier's claim on a pending ship-mode order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	courierID int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a courier to claim an order.
func NewAcceptOrderCommand(orderID, courierID int64) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c AcceptOrderCommand) OrderID() int64 { return c.orderID }

// CourierID returns the claiming courier's account identifier.
func (c AcceptOrderCommand) CourierID() int64 { return c.courierID }

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courierID", fmt.Errorf("%d is not greater than 0", courierID))
	}
	c.courierID = courierID
	return nil
}
