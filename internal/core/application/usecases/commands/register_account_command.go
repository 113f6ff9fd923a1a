package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// RegisterAccountCommand represents a request to create a marketplace account.
// The password arrives already hashed; hashing happens at the HTTP boundary
// so the application layer never sees plaintext credentials.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand("shop@example.com", "Shop", hash, account.Store, "")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterAccountCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register: %w", err)
//	}
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	email        string
	name         string
	passwordHash string
	role         account.Role
	phone        string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that email, name and password hash are non-empty and the role is valid.
func NewRegisterAccountCommand(
	email, name, passwordHash string,
	role account.Role,
	phone string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setName(name),
		cmd.setPasswordHash(passwordHash),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Email returns the unique email to register.
func (c RegisterAccountCommand) Email() string { return c.email }

// Name returns the display name.
func (c RegisterAccountCommand) Name() string { return c.name }

// PasswordHash returns the hashed password.
func (c RegisterAccountCommand) PasswordHash() string { return c.passwordHash }

// Role returns the requested role, fixed for the account's lifetime.
func (c RegisterAccountCommand) Role() account.Role { return c.role }

// Phone returns the optional contact phone.
func (c RegisterAccountCommand) Phone() string { return c.phone }

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = hash
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
