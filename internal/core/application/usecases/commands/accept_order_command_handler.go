package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles a courier claiming a pending order.
//
// Two couriers may race for the same order. The in-memory Accept call only
// fails fast on stale state; the real arbiter is the repository's conditional
// claim, which flips pending to en_route for exactly one winner.
type AcceptOrderCommandHandler struct {
	uowFactory AccountOrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for courier claims.
func NewAcceptOrderCommandHandler(uowFactory AccountOrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept order command.
//
// Business logic flow:
//  1. Authorize the acting account as a courier
//  2. Load the order; only pending ship-mode orders are claimable
//  3. Apply the claim through the conditional update and commit
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	actor, err := uow.AccountRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if account.Authorize(actor, account.Courier) != account.Allowed {
		return errs.NewPermissionDeniedError("accept order")
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.Mode().RequiresCourier() {
		return errs.NewInvalidStateErrorWithCause(
			"accept order",
			fmt.Errorf("order %d is collected by the buyer", o.ID()),
		)
	}

	if err = o.Accept(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.ClaimPending(ctx, cmd.OrderID(), cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
