package ports

import "context"

// CartStore keeps the per-session cart: an ordered list of item identifiers
// where each entry represents one unit. The cart lives for the session only;
// nothing in it is persisted beyond the session lifetime.
type CartStore interface {
	// Append adds one unit of the item to the session cart.
	// Duplicates are allowed.
	Append(ctx context.Context, sessionID string, itemID int64) error

	// Remove deletes the first occurrence of the item from the session cart.
	// Removing an absent item is a no-op, not an error.
	Remove(ctx context.Context, sessionID string, itemID int64) error

	// Items returns the cart's item identifiers in insertion order.
	// A missing cart reads as empty.
	Items(ctx context.Context, sessionID string) ([]int64, error)

	// Clear empties the session cart unconditionally.
	Clear(ctx context.Context, sessionID string) error
}

// SessionStore maps opaque session tokens to authenticated account IDs and
// carries one-shot flash notices shown after redirects.
type SessionStore interface {
	// Start creates a session for the account and returns its token.
	Start(ctx context.Context, accountID int64) (string, error)

	// AccountID resolves a session token to the logged-in account ID.
	// Returns an object-not-found error for unknown or expired tokens.
	AccountID(ctx context.Context, sessionID string) (int64, error)

	// Destroy ends the session. Destroying an unknown session is a no-op.
	Destroy(ctx context.Context, sessionID string) error

	// PushNotice queues a one-shot notice for the session.
	PushNotice(ctx context.Context, sessionID, notice string) error

	// PopNotices drains and returns the queued notices for the session.
	PopNotices(ctx context.Context, sessionID string) ([]string, error)
}
