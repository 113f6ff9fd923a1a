package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrFinalizeOrderCommandIsNotConstructed = errors.New(
		"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
	)
)

// FinalizeOrderCommand represents a courier marking a delivery as completed.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	courierID int64

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to complete a delivery.
func NewFinalizeOrderCommand(orderID, courierID int64) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c FinalizeOrderCommand) OrderID() int64 { return c.orderID }

// CourierID returns the acting courier's account identifier.
func (c FinalizeOrderCommand) CourierID() int64 { return c.courierID }

func (c *FinalizeOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *FinalizeOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courierID", fmt.Errorf("%d is not greater than 0", courierID))
	}
	c.courierID = courierID
	return nil
}
