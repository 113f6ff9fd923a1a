package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// RemoveFromCartCommandHandler handles removing one unit from the cart.
// Removing an item that is not in the cart is a no-op.
type RemoveFromCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(cartStore ports.CartStore) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the remove from cart command.
// Only the first occurrence goes; repeated units need repeated removals.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Remove(ctx, cmd.SessionID(), cmd.ItemID())
}
