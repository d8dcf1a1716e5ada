package storage

import (
	"context"
	"time"
)

// Store is a byte-oriented key-value backend.
// Get returns nil, nil when the key does not exist. An exp of zero means the
// entry does not expire at the store level.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, exp time.Duration) error
	Delete(ctx context.Context, key string) error
}
