// Package storage keeps small values under string keys with a time-to-live.
//
// A Store is a minimal byte-oriented key-value backend. Two implementations are
// provided: MemoryStore, a bounded in-process LRU, and RedisStore, backed by a
// github.com/redis/go-redis/v9 client.
//
// On top of any Store, TTL reads and writes JSON envelopes of the form
//
//	{"value": <json>, "expiry": <unix milliseconds>}
//
// WriteWithExpiry stores a value that ReadWithExpiry returns until the expiry
// passes. Expired or undecodable entries are deleted on read.
//
//	store := storage.NewMemoryStore(1024)
//	ttl := storage.NewTTL(store)
//	storage.WriteWithExpiry(ctx, ttl, "onboarding", state, time.Hour)
//	state, ok := storage.ReadWithExpiry[OnboardingState](ctx, ttl, "onboarding")
//
// # Error Handling
//
// Store methods return errors. The TTL helpers do not: failures are logged
// through the configured *slog.Logger and reported as a miss, so callers can
// treat the storage as best-effort.
package storage
