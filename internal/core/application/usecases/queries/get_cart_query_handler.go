package queries

import (
	"context"

	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GetCartQueryHandler resolves the session cart against the items table.
// Repeated cart entries collapse into one line with a quantity; the order
// of first insertion is preserved.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
	db        *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart views.
func NewGetCartQueryHandler(cartStore ports.CartStore, db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{
		cartStore: cartStore,
		db:        db,
	}
}

// Handle executes the cart view query.
// Identifiers no longer present in the items table are silently skipped;
// they will also be dropped at checkout.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		Entries: make([]GetCartQueryEntry, 0),
	}

	ids, err := h.cartStore.Items(ctx, query.SessionID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	if len(ids) == 0 {
		return resp, nil
	}

	counts := make(map[int64]int)
	ordered := make([]int64, 0, len(ids))
	for _, id := range ids {
		if counts[id] == 0 {
			ordered = append(ordered, id)
		}
		counts[id]++
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			image
		FROM items
		WHERE id IN ?
	`, ordered).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	found := make(map[int64]GetCartQueryEntry)
	for rows.Next() {
		var entry GetCartQueryEntry
		err = rows.Scan(
			&entry.ItemID,
			&entry.Name,
			&entry.Price,
			&entry.Image,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		found[entry.ItemID] = entry
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	for _, id := range ordered {
		entry, ok := found[id]
		if !ok {
			continue
		}
		entry.Quantity = counts[id]
		entry.Subtotal = entry.Price * float64(entry.Quantity)
		resp.Entries = append(resp.Entries, entry)
		resp.Total += entry.Subtotal
	}

	return resp, nil
}
