package services

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CheckoutService is a domain service that turns a resolved cart into a
// pending order and consumes stock from the purchased items.
//
// Business rules:
//   - Store accounts cannot buy
//   - Each cart entry becomes one line with quantity 1 and the item's price
//     captured as the unit-price snapshot
//   - A repeated item yields multiple lines, each consuming one unit of stock
//   - Services never consume stock
//   - An empty resolved cart produces no order at all
//
// The service mutates the passed item aggregates (stock decrements) and
// builds the order; the caller persists both inside one unit of work so the
// order row, its lines and the stock updates commit together or not at all.
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds a pending order for the buyer from the resolved cart items.
//
// cartItems holds one element per cart entry; duplicates are expected and each
// occurrence independently decrements the item's stock by one. Stale cart ids
// must already have been dropped during resolution — every element here is a
// live item.
//
// Returns:
//   - *order.Order: the pending order with snapshot total, not yet persisted
//   - error: permission denied for store buyers, cart-empty for no items, or
//     any aggregate validation failure
func (s CheckoutService) Checkout(
	buyer *account.Account,
	cartItems []*item.Item,
	mode order.DeliveryMode,
	paymentMethod string,
) (*order.Order, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	if !buyer.Role().CanBuy() {
		return nil, errs.NewPermissionDeniedError("stores cannot buy")
	}

	if len(cartItems) == 0 {
		return nil, errs.ErrCartIsEmpty
	}

	lines := make([]order.Line, 0, len(cartItems))
	for _, it := range cartItems {
		if err := it.Validate(); err != nil {
			return nil, err
		}

		line, err := order.NewLine(it.ID(), 1, it.Price())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(buyer.ID(), mode, paymentMethod, lines)
	if err != nil {
		return nil, err
	}

	// Stock is consumed only after the order itself is known to be valid.
	for _, it := range cartItems {
		it.DecrementStock()
	}

	return o, nil
}
