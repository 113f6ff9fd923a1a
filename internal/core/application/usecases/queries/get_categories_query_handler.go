package queries

import (
	"context"

	"marketplace/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler reads the distinct categories of visible items,
// so the filter UI never offers a category whose listings are all hidden.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category listing.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query. Categories are returned sorted alphabetically.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM items
		WHERE kind = ? OR stock_actual > 0
		ORDER BY category
	`, item.KindService.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
