package commands

import (
	"context"
)

// FinalizeOrderCommandHandler handles a courier completing a delivery.
// The aggregate enforces that only the assigned courier may complete an
// en-route order, so no separate role check is needed here.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeOrderCommandHandler creates a handler for delivery completion.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize order command.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
