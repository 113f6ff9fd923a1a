package queries

import (
	"context"

	"marketplace/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetStoreInventoryQueryHandler reads a store's inventory dashboard.
// The low-stock flag only applies to products; services never alert.
type GetStoreInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreInventoryQueryHandler creates a handler for inventory views.
func NewGetStoreInventoryQueryHandler(db *gorm.DB) GetStoreInventoryQueryHandler {
	return GetStoreInventoryQueryHandler{db: db}
}

// Handle executes the inventory query. Listings are sorted by item ID.
func (h GetStoreInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetStoreInventoryQuery,
) (GetStoreInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreInventoryQueryResponse{}, err
	}

	resp := GetStoreInventoryQueryResponse{
		Items: make([]GetStoreInventoryQueryItem, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			category,
			image,
			kind,
			stock_actual,
			stock_minimum
		FROM items
		WHERE store_id = ?
		ORDER BY id
	`, query.StoreID()).Rows()
	if err != nil {
		return GetStoreInventoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetStoreInventoryQueryItem
		err = rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Price,
			&entry.Category,
			&entry.Image,
			&entry.Kind,
			&entry.StockActual,
			&entry.StockMinimum,
		)
		if err != nil {
			return GetStoreInventoryQueryResponse{}, err
		}

		entry.LowStock = entry.Kind == item.KindProduct.String() &&
			entry.StockActual <= entry.StockMinimum
		if entry.LowStock {
			resp.LowStockCount++
		}
		resp.Items = append(resp.Items, entry)
	}

	if err = rows.Err(); err != nil {
		return GetStoreInventoryQueryResponse{}, err
	}

	return resp, nil
}
