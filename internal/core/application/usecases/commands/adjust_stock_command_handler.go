package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// AdjustStockCommandHandler handles the business logic for stock adjustments.
// Only the owning store may change an item's stock.
type AdjustStockCommandHandler struct {
	uowFactory AccountItemUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory AccountItemUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
//
// Business logic flow:
//  1. Authorize the acting account as a store
//  2. Load the item and verify ownership
//  3. Apply the adjustment (services are a no-op, negatives rejected)
//  4. Persist and commit
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	actor, err := uow.AccountRepository().Get(ctx, cmd.ActingAccountID())
	if err != nil {
		return err
	}
	if account.Authorize(actor, account.Store) != account.Allowed {
		return errs.NewPermissionDeniedError("adjust stock")
	}

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if !it.IsOwnedBy(cmd.ActingAccountID()) {
		return errs.NewPermissionDeniedError("adjust stock of another store's item")
	}

	if err = it.AdjustStock(cmd.NewStock()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
