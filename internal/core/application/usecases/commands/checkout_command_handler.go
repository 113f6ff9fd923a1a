package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CheckoutCommandHandler turns the session cart into a pending order.
//
// The order row, its lines and the stock decrements commit in one
// transaction; the cart is cleared only after the commit succeeds, so a
// failed checkout leaves the cart intact.
type CheckoutCommandHandler struct {
	cartStore       ports.CartStore
	uowFactory      UoWFactory
	checkoutService services.CheckoutService
}

// NewCheckoutCommandHandler creates a handler for checkout.
func NewCheckoutCommandHandler(cartStore ports.CartStore, uowFactory UoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		cartStore:       cartStore,
		uowFactory:      uowFactory,
		checkoutService: services.NewCheckoutService(),
	}
}

// Handle processes the checkout command.
//
// Business logic flow:
//  1. Read the cart's item identifiers from the session store
//  2. Resolve each entry against the catalog, silently dropping identifiers
//     whose items have disappeared since they were added
//  3. Run the checkout domain service (builds the order, consumes stock)
//  4. Persist the order and every distinct touched item in one transaction
//  5. Clear the cart after the commit
//
// A cart that resolves to nothing fails with errs.ErrCartIsEmpty and no
// order is created.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cartIDs, err := h.cartStore.Items(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.AccountRepository().Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()

	// Resolve cart entries against the catalog. Repeated identifiers reuse
	// the same aggregate instance so repeated decrements land on one item.
	resolved := make(map[int64]*item.Item)
	cartItems := make([]*item.Item, 0, len(cartIDs))
	for _, id := range cartIDs {
		it, ok := resolved[id]
		if !ok {
			it, err = itemRepo.Get(ctx, id)
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			resolved[id] = it
		}
		cartItems = append(cartItems, it)
	}

	o, err := h.checkoutService.Checkout(buyer, cartItems, cmd.Mode(), cmd.PaymentMethod())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	for _, it := range resolved {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, cmd.SessionID())
}
