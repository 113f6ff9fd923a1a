package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierBoardQueryHandler reads the courier dashboard from the database.
type GetCourierBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierBoardQueryHandler creates a handler for the courier board.
func NewGetCourierBoardQueryHandler(db *gorm.DB) GetCourierBoardQueryHandler {
	return GetCourierBoardQueryHandler{db: db}
}

// Handle executes the courier board query.
// Available work is every pending ship-mode order; the courier's own list
// is their en-route deliveries. Both are oldest first so long-waiting
// orders surface at the top.
func (h GetCourierBoardQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBoardQuery,
) (GetCourierBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBoardQueryResponse{}, err
	}

	resp := GetCourierBoardQueryResponse{
		Available: make([]GetCourierBoardQueryOrder, 0),
		Mine:      make([]GetCourierBoardQueryOrder, 0),
	}

	available, err := h.scanBoard(ctx, `
		SELECT
			o.id,
			a.name AS buyer_name,
			o.payment_method,
			o.total,
			o.created_at
		FROM orders o
		JOIN accounts a ON a.id = o.buyer_id
		WHERE o.status = ? AND o.mode = ?
		ORDER BY o.created_at, o.id
	`, order.Pending.String(), order.Ship.String())
	if err != nil {
		return GetCourierBoardQueryResponse{}, err
	}
	resp.Available = available

	mine, err := h.scanBoard(ctx, `
		SELECT
			o.id,
			a.name AS buyer_name,
			o.payment_method,
			o.total,
			o.created_at
		FROM orders o
		JOIN accounts a ON a.id = o.buyer_id
		WHERE o.status = ? AND o.courier_id = ?
		ORDER BY o.created_at, o.id
	`, order.EnRoute.String(), query.CourierID())
	if err != nil {
		return GetCourierBoardQueryResponse{}, err
	}
	resp.Mine = mine

	return resp, nil
}

func (h GetCourierBoardQueryHandler) scanBoard(
	ctx context.Context,
	sqlText string,
	args ...any,
) ([]GetCourierBoardQueryOrder, error) {
	board := make([]GetCourierBoardQueryOrder, 0)

	var rows *sql.Rows
	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCourierBoardQueryOrder
		err = rows.Scan(
			&entry.ID,
			&entry.BuyerName,
			&entry.PaymentMethod,
			&entry.Total,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		board = append(board, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
