package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a buyer's order history with its
// lines in one round trip each.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the order history query, newest orders first.
// Line item names fall back to "(removed)" when the listing was deleted
// after the purchase; the captured price still stands.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			mode,
			payment_method,
			total,
			created_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.BuyerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var o GetCustomerOrdersQueryResponse
		err = rows.Scan(
			&o.ID,
			&o.Status,
			&o.Mode,
			&o.PaymentMethod,
			&o.Total,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		o.Lines = make([]GetCustomerOrdersQueryLine, 0)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			COALESCE(i.name, '(removed)'),
			l.quantity,
			l.unit_price
		FROM order_lines l
		LEFT JOIN items i ON i.id = l.item_id
		JOIN orders o ON o.id = l.order_id
		WHERE o.buyer_id = ?
		ORDER BY l.id
	`, query.BuyerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID int64
		var line GetCustomerOrdersQueryLine
		err = lineRows.Scan(
			&orderID,
			&line.ItemName,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		if pos, ok := index[orderID]; ok {
			orders[pos].Lines = append(orders[pos].Lines, line)
		}
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
