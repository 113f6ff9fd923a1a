package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AddToCartCommandHandler handles the business logic for adding to the cart.
// The cart itself lives in the session store; the item is loaded only to
// confirm it still exists before its identifier goes into the cart.
type AddToCartCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory ItemUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(cartStore ports.CartStore, uowFactory ItemUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle processes the add to cart command.
// Duplicates are allowed: every call appends one more unit.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActingRole().CanBuy() {
		return errs.NewPermissionDeniedError("add to cart")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ItemRepository().Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartStore.Append(ctx, cmd.SessionID(), cmd.ItemID())
}
