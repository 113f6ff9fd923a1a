package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves a buyer's order history, newest first.
type GetCustomerOrdersQuery struct {
	buyerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a buyer's order history.
func NewGetCustomerOrdersQuery(buyerID int64) (GetCustomerOrdersQuery, error) {
	if buyerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"buyerID", fmt.Errorf("%d is not greater than 0", buyerID))
	}

	return GetCustomerOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose history is retrieved.
func (q GetCustomerOrdersQuery) BuyerID() int64 { return q.buyerID }

// GetCustomerOrdersQueryLine is one purchased item within an order,
// priced as it was at checkout.
type GetCustomerOrdersQueryLine struct {
	ItemName  string
	Quantity  int
	UnitPrice float64
}

// GetCustomerOrdersQueryResponse is one order in the buyer's history.
type GetCustomerOrdersQueryResponse struct {
	ID            int64
	Status        string
	Mode          string
	PaymentMethod string
	Total         float64
	CreatedAt     time.Time
	Lines         []GetCustomerOrdersQueryLine
}
