package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSalesHistoryQueryHandler reads a store's sales from the order lines
// referencing its items.
type GetSalesHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesHistoryQueryHandler creates a handler for sales history.
func NewGetSalesHistoryQueryHandler(db *gorm.DB) GetSalesHistoryQueryHandler {
	return GetSalesHistoryQueryHandler{db: db}
}

// Handle executes the sales history query, newest sales first.
func (h GetSalesHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetSalesHistoryQuery,
) (GetSalesHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesHistoryQueryResponse{}, err
	}

	resp := GetSalesHistoryQueryResponse{
		Sales: make([]GetSalesHistoryQuerySale, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			i.name AS item_name,
			a.name AS buyer_name,
			l.quantity,
			l.unit_price,
			o.created_at
		FROM order_lines l
		JOIN items i ON i.id = l.item_id
		JOIN orders o ON o.id = l.order_id
		JOIN accounts a ON a.id = o.buyer_id
		WHERE i.store_id = ?
		ORDER BY o.created_at DESC, l.id DESC
	`, query.StoreID()).Rows()
	if err != nil {
		return GetSalesHistoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var sale GetSalesHistoryQuerySale
		err = rows.Scan(
			&sale.OrderID,
			&sale.ItemName,
			&sale.BuyerName,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.SoldAt,
		)
		if err != nil {
			return GetSalesHistoryQueryResponse{}, err
		}

		resp.Sales = append(resp.Sales, sale)
		resp.Revenue += sale.UnitPrice * float64(sale.Quantity)
	}

	if err = rows.Err(); err != nil {
		return GetSalesHistoryQueryResponse{}, err
	}

	return resp, nil
}
