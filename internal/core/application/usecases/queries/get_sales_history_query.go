package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetSalesHistoryQueryIsNotConstructed = errors.New(
		"GetSalesHistoryQuery must be created via NewGetSalesHistoryQuery constructor",
	)
)

// GetSalesHistoryQuery retrieves every sold unit of a store's listings with
// the revenue total. Revenue sums the captured unit prices, so later price
// changes never rewrite history.
type GetSalesHistoryQuery struct {
	storeID int64

	guard guard.ConstructorGuard
}

// NewGetSalesHistoryQuery creates a query for a store's sales history.
func NewGetSalesHistoryQuery(storeID int64) (GetSalesHistoryQuery, error) {
	if storeID <= 0 {
		return GetSalesHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"storeID", fmt.Errorf("%d is not greater than 0", storeID))
	}

	return GetSalesHistoryQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesHistoryQueryIsNotConstructed)
}

// StoreID returns the store whose sales are retrieved.
func (q GetSalesHistoryQuery) StoreID() int64 { return q.storeID }

// GetSalesHistoryQuerySale is one sold line of the store's items.
type GetSalesHistoryQuerySale struct {
	OrderID   int64
	ItemName  string
	BuyerName string
	Quantity  int
	UnitPrice float64
	SoldAt    time.Time
}

// GetSalesHistoryQueryResponse is the sales dashboard: individual sales
// plus the revenue total.
type GetSalesHistoryQueryResponse struct {
	Sales   []GetSalesHistoryQuerySale
	Revenue float64
}
