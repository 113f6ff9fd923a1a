package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a checkout transaction in the marketplace. It is the
// aggregate root that manages the order lifecycle from checkout through
// courier claim to delivery.
//
// Order follows these invariants:
//   - Has at least one line; the total is the snapshot sum of line subtotals
//   - Courier reference is nil until the status transitions to EnRoute
//   - Only ship-mode orders are ever offered to couriers
//   - Status transitions follow the Pending -> EnRoute -> Delivered machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the identifier assigned by the persistence layer
	id int64

	// buyerID references the account that checked out the cart
	buyerID int64

	// courierID is the claiming courier's account ID (nil while pending)
	courierID *int64

	// status is the current state in the order lifecycle
	status Status

	// mode says whether a courier delivers the order or the buyer collects it
	mode DeliveryMode

	// paymentMethod is the method chosen at checkout
	paymentMethod string

	// total is the snapshot sum of line subtotals captured at checkout
	total float64

	// createdAt is the checkout timestamp
	createdAt time.Time

	// lines are the item-quantity pairings that make up the order
	lines []Line

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an Order at checkout time in Pending status.
//
// The lines must be non-empty — a checkout that resolves no items creates no
// order at all (errs.ErrCartIsEmpty). The total is computed from the lines'
// captured unit prices, never recomputed from live item prices later.
func NewOrder(buyerID int64, mode DeliveryMode, paymentMethod string, lines []Line) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setBuyerID(buyerID),
		o.setMode(mode),
		o.setPaymentMethod(paymentMethod),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	for _, l := range o.lines {
		o.total += l.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Validates that the stored status and courier reference are consistent.
func RestoreOrder(
	id, buyerID int64,
	courierID *int64,
	status Status,
	mode DeliveryMode,
	paymentMethod string,
	total float64,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	o, err := NewOrder(buyerID, mode, paymentMethod, lines)
	if err != nil {
		return nil, err
	}

	if err = o.AssignID(id); err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.courierID = courierID
	o.total = total
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID attaches the identifier generated by the persistence layer.
// It may be called exactly once, with a positive value.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("id %d is already assigned", o.id))
	}
	o.id = id
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 { return o.id }

// BuyerID returns the buying account's identifier.
func (o *Order) BuyerID() int64 { return o.buyerID }

// Courier returns the claiming courier's account ID.
// Returns nil while the order is pending.
func (o *Order) Courier() *int64 { return o.courierID }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Mode returns the order's delivery mode.
func (o *Order) Mode() DeliveryMode { return o.mode }

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// Total returns the snapshot total captured at checkout.
func (o *Order) Total() float64 { return o.total }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Lines returns the order's line items.
func (o *Order) Lines() []Line { return o.lines }

// Accept claims the order for a courier and moves it to EnRoute.
//
// Business rules:
//   - The order must be Pending (otherwise an invalid-state error)
//   - The courier ID must be positive
//
// There is no ownership check beyond the state: the first courier to claim
// wins. The persistence layer makes the transition exclusive with a
// conditional update, so exactly one concurrent claim can succeed.
func (o *Order) Accept(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courierID", fmt.Errorf("%d is not greater than 0", courierID))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - Only the assigned courier may complete the order (permission denied otherwise)
//   - The order must be EnRoute
//   - Delivered is terminal
func (o *Order) Complete(courierID int64) error {
	if o.courierID == nil || *o.courierID != courierID {
		return errs.NewPermissionDeniedErrorWithCause(
			"complete order",
			fmt.Errorf("courier %d is not assigned to order %d", courierID, o.id),
		)
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setBuyerID(buyerID int64) error {
	if buyerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("buyerID", fmt.Errorf("%d is not greater than 0", buyerID))
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.mode = mode
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.ErrCartIsEmpty
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
