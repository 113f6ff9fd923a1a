package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine constructor")

// Line is a value object pairing one item with a quantity inside an order.
// The unit price is captured at checkout time so that later price edits on
// the item never rewrite historical totals or reported revenue.
type Line struct {
	itemID    int64
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewLine creates an order line for the given item.
// Quantity must be positive and the unit price non-negative.
func NewLine(itemID int64, quantity int, unitPrice float64) (Line, error) {
	if itemID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("itemID", fmt.Errorf("%d is not greater than 0", itemID))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}

	return Line{
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the referenced item's identifier.
func (l Line) ItemID() int64 { return l.itemID }

// Quantity returns the number of units in this line.
func (l Line) Quantity() int { return l.quantity }

// UnitPrice returns the price per unit captured at checkout.
func (l Line) UnitPrice() float64 { return l.unitPrice }

// Subtotal returns quantity times the captured unit price.
func (l Line) Subtotal() float64 {
	return float64(l.quantity) * l.unitPrice
}
