// Package ports defines the contracts between the core and infrastructure:
// repositories, the unit of work, the session-scoped cart store and the
// upload file store. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account and assigns its generated identifier
	// back to the aggregate. Fails when the email is already registered.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its identifier.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// GetByEmail retrieves an account by its unique email.
	// Returns an object-not-found error when no account matches.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
