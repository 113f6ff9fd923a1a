package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCategoriesQueryIsNotConstructed = errors.New(
		"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
	)
)

// GetCategoriesQuery retrieves the distinct categories present in the
// catalog, used to build the category filter on the storefront.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query to list the catalog categories.
// This is a parameterless query.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}
