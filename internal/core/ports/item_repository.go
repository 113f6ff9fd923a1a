package ports

import (
	"context"

	"marketplace/internal/core/domain/model/item"
)

// ItemRepository defines the persistence contract for item aggregates.
// Catalog reads go through dedicated query handlers; this interface serves
// the command side only.
type ItemRepository interface {
	// Add persists a new item and assigns its generated identifier back
	// to the aggregate.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its identifier.
	Get(ctx context.Context, id int64) (*item.Item, error)

	// GetByStore retrieves all items owned by the given store account.
	GetByStore(ctx context.Context, storeID int64) ([]*item.Item, error)
}
