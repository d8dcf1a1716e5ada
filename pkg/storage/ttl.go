package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dmitrymomot/utilkit/pkg/logger"
)

// DefaultTTL is used when WriteWithExpiry receives a non-positive ttl.
const DefaultTTL = 2 * time.Hour

type envelope struct {
	Value  json.RawMessage `json:"value"`
	Expiry int64           `json:"expiry"`
}

// TTL wraps a Store with expiring JSON values.
type TTL struct {
	store Store
	now   func() time.Time
	log   *slog.Logger
}

type TTLOption func(*TTL)

func WithClock(now func() time.Time) TTLOption {
	return func(t *TTL) {
		if now != nil {
			t.now = now
		}
	}
}

func WithLogger(l *slog.Logger) TTLOption {
	return func(t *TTL) {
		if l != nil {
			t.log = l
		}
	}
}

func NewTTL(store Store, opts ...TTLOption) *TTL {
	t := &TTL{
		store: store,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(logger.Component("storage"))
	return t
}

// WriteWithExpiry stores value under key until now+ttl. Errors are logged and
// the write is skipped.
func WriteWithExpiry[T any](ctx context.Context, t *TTL, key string, value T, ttl time.Duration) {
	if t == nil || t.store == nil {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		t.log.ErrorContext(ctx, "write with expiry: encode value", logger.Key(key), logger.Error(err))
		return
	}

	data, err := json.Marshal(envelope{
		Value:  raw,
		Expiry: t.now().Add(ttl).UnixMilli(),
	})
	if err != nil {
		t.log.ErrorContext(ctx, "write with expiry: encode envelope", logger.Key(key), logger.Error(err))
		return
	}

	if err := t.store.Set(ctx, key, data, ttl); err != nil {
		t.log.ErrorContext(ctx, "write with expiry: store", logger.Key(key), logger.Error(err))
	}
}

// ReadWithExpiry returns the value stored by WriteWithExpiry. The boolean is
// false when the key is missing, expired or unreadable; expired and
// unreadable entries are deleted.
func ReadWithExpiry[T any](ctx context.Context, t *TTL, key string) (T, bool) {
	var zero T
	if t == nil || t.store == nil {
		return zero, false
	}

	data, err := t.store.Get(ctx, key)
	if err != nil {
		t.log.ErrorContext(ctx, "read with expiry: store", logger.Key(key), logger.Error(err))
		return zero, false
	}
	if len(data) == 0 {
		return zero, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.log.ErrorContext(ctx, "read with expiry: decode envelope", logger.Key(key), logger.Error(err))
		t.remove(ctx, key)
		return zero, false
	}

	if t.now().UnixMilli() > env.Expiry {
		t.remove(ctx, key)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(env.Value, &value); err != nil {
		t.log.ErrorContext(ctx, "read with expiry: decode value", logger.Key(key), logger.Error(err))
		t.remove(ctx, key)
		return zero, false
	}

	return value, true
}

// Remove deletes key regardless of its expiry.
func (t *TTL) Remove(ctx context.Context, key string) {
	if t == nil || t.store == nil {
		return
	}
	t.remove(ctx, key)
}

func (t *TTL) remove(ctx context.Context, key string) {
	if err := t.store.Delete(ctx, key); err != nil {
		t.log.ErrorContext(ctx, "delete expired entry", logger.Key(key), logger.Error(err))
	}
}
