package redisstore

import "time"

const (
	// Session token to account ID: session:{token} -> account_id
	keySession = "session:%s"

	// Cart per session: cart:{token} -> list of item IDs, one entry per unit
	keyCart = "cart:%s"

	// Flash notices per session: notices:{token} -> list of messages
	keyNotices = "notices:%s"
)

var (
	ttlSession = 24 * time.Hour
	ttlCart    = 24 * time.Hour
	ttlNotices = 10 * time.Minute
)
