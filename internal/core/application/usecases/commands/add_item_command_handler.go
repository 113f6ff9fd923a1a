package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/pkg/errs"
)

// AddItemCommandHandler handles the business logic for publishing a listing.
// Only store accounts may list items; the aggregate enforces the rest.
type AddItemCommandHandler struct {
	uowFactory AccountItemUoWFactory
}

// NewAddItemCommandHandler creates a handler for item listing.
func NewAddItemCommandHandler(uowFactory AccountItemUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
//
// Business logic flow:
//  1. Load the acting account and authorize the store role
//  2. Build the item aggregate (validates name, price, kind, stock)
//  3. Persist and commit
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	actor, err := uow.AccountRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if account.Authorize(actor, account.Store) != account.Allowed {
		return errs.NewPermissionDeniedError("list item")
	}

	it, err := item.NewItem(
		cmd.StoreID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
		cmd.Category(),
		cmd.ImageRef(),
		cmd.Kind(),
		cmd.Stock(),
	)
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
