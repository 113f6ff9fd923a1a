// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers bypass the domain model and read through SQL for performance.
package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves the public catalog: every service plus every
// product with stock on hand. Both filters are optional; category matches
// exactly, name matches as a case-insensitive substring.
//
// Example:
//
//	query := NewGetCatalogQuery("Drinks", "cola")
//	handler := NewGetCatalogQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load catalog: %w", err)
//	}
type GetCatalogQuery struct {
	category string
	search   string

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog query. Empty filters match everything.
func NewGetCatalogQuery(category, search string) GetCatalogQuery {
	return GetCatalogQuery{
		category: category,
		search:   search,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Category returns the exact-match category filter, empty for all.
func (q GetCatalogQuery) Category() string { return q.category }

// Search returns the name substring filter, empty for all.
func (q GetCatalogQuery) Search() string { return q.search }

// GetCatalogQueryResponse is one visible catalog entry with its store's
// display name denormalized in.
type GetCatalogQueryResponse struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	Category    string
	Image       string
	Kind        string
	Stock       int
	StoreID     int64
	StoreName   string
}
