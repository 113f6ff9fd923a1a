package queries

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the session cart with live item details and the
// running total. Cart entries whose items have been removed from the
// catalog are dropped from the view.
type GetCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to view the session cart.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	if sessionID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("sessionID")
	}

	return GetCartQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the session whose cart is viewed.
func (q GetCartQuery) SessionID() string { return q.sessionID }

// GetCartQueryEntry is one cart line: an item snapshot with the number of
// units currently in the cart.
type GetCartQueryEntry struct {
	ItemID   int64
	Name     string
	Price    float64
	Image    string
	Quantity int
	Subtotal float64
}

// GetCartQueryResponse is the full cart view.
type GetCartQueryResponse struct {
	Entries []GetCartQueryEntry
	Total   float64
}
