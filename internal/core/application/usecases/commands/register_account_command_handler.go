package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the email is taken by another account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterAccountCommandHandler handles the business logic for registration.
// Rejects duplicate emails and persists the new account in one transaction.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The email uniqueness check and the insert run in the same transaction.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	accountRepo := uow.AccountRepository()

	_, err := accountRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	acc, err := account.NewAccount(cmd.Email(), cmd.Name(), cmd.PasswordHash(), cmd.Role(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
