package artstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound signals a key miss explicitly; adapters never return an empty
// value for a missing key.
var ErrNotFound = errors.New("artifact not found")

// KeyValueStore is the persistence capability for encoded artifacts. A zero
// ttl on Put persists the value indefinitely. Delete is idempotent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
