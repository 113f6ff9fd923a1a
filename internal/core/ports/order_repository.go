package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its lines and assigns the generated
	// identifier back to the aggregate. Lines are written in the same
	// transaction as the order row.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, including its lines.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// ClaimPending atomically transitions a pending order to en_route and
	// assigns the courier, guarding the claim against concurrent couriers:
	// the transition only applies while the stored status is still pending,
	// so exactly one of two simultaneous claims can succeed. Returns an
	// invalid-state error when the order was already claimed (or is not
	// pending) and an object-not-found error when it does not exist.
	ClaimPending(ctx context.Context, orderID, courierID int64) error
}
