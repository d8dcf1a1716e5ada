package storage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/logger"
	"github.com/dmitrymomot/utilkit/pkg/storage"
)

type profile struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, f.err
}

func (f failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return f.err
}

func (f failingStore) Delete(context.Context, string) error {
	return f.err
}

func newTTL(t *testing.T) (*storage.TTL, *storage.MemoryStore, *clock) {
	t.Helper()
	store := storage.NewMemoryStore(16)
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return storage.NewTTL(store, storage.WithClock(c.Now)), store, c
}

func TestWriteReadWithExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip before expiry", func(t *testing.T) {
		t.Parallel()

		ttl, _, c := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "profile", profile{Name: "jane", Theme: "dark"}, time.Minute)

		c.now = c.now.Add(59 * time.Second)
		got, ok := storage.ReadWithExpiry[profile](ctx, ttl, "profile")
		require.True(t, ok)
		assert.Equal(t, profile{Name: "jane", Theme: "dark"}, got)
	})

	t.Run("stores the envelope format", func(t *testing.T) {
		t.Parallel()

		ttl, store, c := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "n", 42, time.Second)

		raw, err := store.Get(ctx, "n")
		require.NoError(t, err)

		var env map[string]any
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, float64(42), env["value"])
		assert.Equal(t, float64(c.now.Add(time.Second).UnixMilli()), env["expiry"])
	})

	t.Run("expired entry is removed", func(t *testing.T) {
		t.Parallel()

		ttl, store, c := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "k", "v", time.Minute)

		c.now = c.now.Add(time.Minute + time.Millisecond)
		_, ok := storage.ReadWithExpiry[string](ctx, ttl, "k")
		assert.False(t, ok)

		raw, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("exact expiry is still valid", func(t *testing.T) {
		t.Parallel()

		ttl, _, c := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "k", "v", time.Minute)

		c.now = c.now.Add(time.Minute)
		got, ok := storage.ReadWithExpiry[string](ctx, ttl, "k")
		assert.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("non-positive ttl uses default", func(t *testing.T) {
		t.Parallel()

		ttl, _, c := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "k", true, 0)

		c.now = c.now.Add(storage.DefaultTTL - time.Second)
		_, ok := storage.ReadWithExpiry[bool](ctx, ttl, "k")
		assert.True(t, ok)

		c.now = c.now.Add(2 * time.Second)
		_, ok = storage.ReadWithExpiry[bool](ctx, ttl, "k")
		assert.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		ttl, _, _ := newTTL(t)
		got, ok := storage.ReadWithExpiry[int](ctx, ttl, "missing")
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("garbage is removed", func(t *testing.T) {
		t.Parallel()

		ttl, store, _ := newTTL(t)
		require.NoError(t, store.Set(ctx, "k", []byte("not json"), 0))

		_, ok := storage.ReadWithExpiry[string](ctx, ttl, "k")
		assert.False(t, ok)

		raw, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("type mismatch is removed", func(t *testing.T) {
		t.Parallel()

		ttl, store, _ := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "k", "text", time.Minute)

		_, ok := storage.ReadWithExpiry[int](ctx, ttl, "k")
		assert.False(t, ok)

		raw, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		ttl, _, _ := newTTL(t)
		storage.WriteWithExpiry(ctx, ttl, "k", "v", time.Minute)
		ttl.Remove(ctx, "k")

		_, ok := storage.ReadWithExpiry[string](ctx, ttl, "k")
		assert.False(t, ok)
	})
}

func TestTTL_FailOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	ttl := storage.NewTTL(failingStore{err: errors.New("backend down")}, storage.WithLogger(log))

	assert.NotPanics(t, func() {
		storage.WriteWithExpiry(ctx, ttl, "k", "v", time.Minute)
	})
	_, ok := storage.ReadWithExpiry[string](ctx, ttl, "k")
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, "backend down")
	assert.Contains(t, out, `"component":"storage"`)
	assert.Contains(t, out, `"key":"k"`)

	var nilTTL *storage.TTL
	assert.NotPanics(t, func() {
		storage.WriteWithExpiry(ctx, nilTTL, "k", 1, time.Second)
		_, ok := storage.ReadWithExpiry[int](ctx, nilTTL, "k")
		assert.False(t, ok)
		nilTTL.Remove(ctx, "k")
	})
}

func TestTTL_UnencodableValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	buf := &bytes.Buffer{}
	store := storage.NewMemoryStore(1)
	ttl := storage.NewTTL(store, storage.WithLogger(logger.New(logger.WithOutput(buf))))

	storage.WriteWithExpiry(ctx, ttl, "ch", make(chan int), time.Minute)

	raw, err := store.Get(ctx, "ch")
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.Contains(t, buf.String(), "encode value")
}
