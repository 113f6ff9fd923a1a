package redisstore

import (
	"context"
	"fmt"
	"strconv"

	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var _ ports.CartStore = (*RedisCartStore)(nil)

// RedisCartStore keeps each session's cart as a Redis list. One list entry
// per unit, so duplicates encode quantity and insertion order is preserved.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a cart store backed by the given Redis client.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Append adds one unit of the item to the session cart.
func (s *RedisCartStore) Append(ctx context.Context, sessionID string, itemID int64) error {
	key := fmt.Sprintf(keyCart, sessionID)

	if err := s.client.RPush(ctx, key, itemID).Err(); err != nil {
		return fmt.Errorf("append to cart %s: %w", sessionID, err)
	}
	return s.client.Expire(ctx, key, ttlCart).Err()
}

// Remove deletes the first occurrence of the item from the session cart.
// Removing an absent item is a no-op.
func (s *RedisCartStore) Remove(ctx context.Context, sessionID string, itemID int64) error {
	key := fmt.Sprintf(keyCart, sessionID)

	if err := s.client.LRem(ctx, key, 1, itemID).Err(); err != nil {
		return fmt.Errorf("remove from cart %s: %w", sessionID, err)
	}
	return nil
}

// Items returns the cart's item identifiers in insertion order.
// A missing cart reads as empty.
func (s *RedisCartStore) Items(ctx context.Context, sessionID string) ([]int64, error) {
	key := fmt.Sprintf(keyCart, sessionID)

	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart %s: %w", sessionID, err)
	}

	itemIDs := make([]int64, 0, len(raw))
	for _, entry := range raw {
		id, err := strconv.ParseInt(entry, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart entry %q in %s: %w", entry, sessionID, err)
		}
		itemIDs = append(itemIDs, id)
	}
	return itemIDs, nil
}

// Clear empties the session cart unconditionally.
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(keyCart, sessionID)
	return s.client.Del(ctx, key).Err()
}
