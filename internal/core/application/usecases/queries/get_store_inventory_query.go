package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetStoreInventoryQueryIsNotConstructed = errors.New(
		"GetStoreInventoryQuery must be created via NewGetStoreInventoryQuery constructor",
	)
)

// GetStoreInventoryQuery retrieves a store's own listings together with the
// number of products at or below their low-stock threshold.
type GetStoreInventoryQuery struct {
	storeID int64

	guard guard.ConstructorGuard
}

// NewGetStoreInventoryQuery creates a query for a store's inventory view.
func NewGetStoreInventoryQuery(storeID int64) (GetStoreInventoryQuery, error) {
	if storeID <= 0 {
		return GetStoreInventoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"storeID", fmt.Errorf("%d is not greater than 0", storeID))
	}

	return GetStoreInventoryQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreInventoryQueryIsNotConstructed)
}

// StoreID returns the store whose inventory is retrieved.
func (q GetStoreInventoryQuery) StoreID() int64 { return q.storeID }

// GetStoreInventoryQueryItem is one listing in the store's inventory view.
type GetStoreInventoryQueryItem struct {
	ID           int64
	Name         string
	Price        float64
	Category     string
	Image        string
	Kind         string
	StockActual  int
	StockMinimum int
	LowStock     bool
}

// GetStoreInventoryQueryResponse is the inventory dashboard: all listings
// plus the low-stock alert count shown in the header.
type GetStoreInventoryQueryResponse struct {
	Items         []GetStoreInventoryQueryItem
	LowStockCount int
}
