package queries

import (
	"context"

	"marketplace/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads the public catalog from the database.
// Visibility is decided in SQL: services always show, products only with
// positive stock.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the catalog query.
// Results are sorted by item ID for stable pagination-free listings.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetCatalogQueryResponse, 0)

	sql := `
		SELECT
			i.id,
			i.name,
			i.price,
			i.description,
			i.category,
			i.image,
			i.kind,
			i.stock_actual,
			i.store_id,
			a.name AS store_name
		FROM items i
		JOIN accounts a ON a.id = i.store_id
		WHERE (i.kind = ? OR i.stock_actual > 0)
	`
	args := []any{item.KindService.String()}

	if query.Category() != "" {
		sql += " AND i.category = ?"
		args = append(args, query.Category())
	}
	if query.Search() != "" {
		sql += " AND i.name ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}
	sql += " ORDER BY i.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCatalogQueryResponse

		err = rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Price,
			&entry.Description,
			&entry.Category,
			&entry.Image,
			&entry.Kind,
			&entry.Stock,
			&entry.StoreID,
			&entry.StoreName,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
