package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Cache stores JSON-encoded values. A miss is reported as (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr bumps a counter and returns its new value.
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}

const CartKeyPrefix = "cart"

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// CartKey addresses one version of the grouped cart view of a user. A view
// stored under an outdated version is never read again and expires on its own.
func CartKey(userID uuid.UUID, version int64) string {
	return Key(CartKeyPrefix, userID.String()+":v"+strconv.FormatInt(version, 10))
}

// CartVersionKey holds the counter bumped on every cart mutation.
func CartVersionKey(userID uuid.UUID) string {
	return Key(CartKeyPrefix, userID.String()+":version")
}
