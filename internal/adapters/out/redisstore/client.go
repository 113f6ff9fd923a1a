// Package redisstore implements the session-scoped stores on Redis: the
// cart (an ordered list of item IDs per session) and the session itself
// (token to account mapping plus one-shot flash notices). Everything here
// expires with the session TTL; nothing is meant to outlive a login.
package redisstore

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// New creates a Redis client for the given address.
func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}
