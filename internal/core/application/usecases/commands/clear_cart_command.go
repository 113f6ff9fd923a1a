package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand represents a request to empty the session cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the session cart.
func NewClearCartCommand(sessionID string) (ClearCartCommand, error) {
	if sessionID == "" {
		return ClearCartCommand{}, errs.NewValueIsRequiredError("sessionID")
	}

	return ClearCartCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// SessionID returns the session whose cart is emptied.
func (c ClearCartCommand) SessionID() string { return c.sessionID }
