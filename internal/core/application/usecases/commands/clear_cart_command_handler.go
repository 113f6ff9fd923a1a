package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// ClearCartCommandHandler handles emptying the session cart.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for clearing the cart.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the clear cart command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, cmd.SessionID())
}
