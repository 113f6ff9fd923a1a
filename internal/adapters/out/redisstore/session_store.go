package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ ports.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore maps opaque session tokens to account IDs and carries
// the one-shot flash notices shown after redirects. Tokens are random UUIDs
// and expire together with the cart.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store backed by the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Start creates a session for the account and returns its token.
func (s *RedisSessionStore) Start(ctx context.Context, accountID int64) (string, error) {
	token := uuid.NewString()
	key := fmt.Sprintf(keySession, token)

	if err := s.client.Set(ctx, key, accountID, ttlSession).Err(); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return token, nil
}

// AccountID resolves a session token to the logged-in account ID.
func (s *RedisSessionStore) AccountID(ctx context.Context, sessionID string) (int64, error) {
	key := fmt.Sprintf(keySession, sessionID)

	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, errs.NewObjectNotFoundError("sessionID", sessionID)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}

	accountID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", raw, err)
	}
	return accountID, nil
}

// Destroy ends the session and drops its cart and pending notices.
func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx,
		fmt.Sprintf(keySession, sessionID),
		fmt.Sprintf(keyCart, sessionID),
		fmt.Sprintf(keyNotices, sessionID),
	).Err()
}

// PushNotice queues a one-shot notice for the session.
func (s *RedisSessionStore) PushNotice(ctx context.Context, sessionID, notice string) error {
	key := fmt.Sprintf(keyNotices, sessionID)

	if err := s.client.RPush(ctx, key, notice).Err(); err != nil {
		return fmt.Errorf("push notice: %w", err)
	}
	return s.client.Expire(ctx, key, ttlNotices).Err()
}

// PopNotices drains and returns the queued notices for the session.
func (s *RedisSessionStore) PopNotices(ctx context.Context, sessionID string) ([]string, error) {
	key := fmt.Sprintf(keyNotices, sessionID)

	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("pop notices: %w", err)
	}
	return rangeCmd.Val(), nil
}
