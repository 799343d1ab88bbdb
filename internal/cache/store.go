// Package cache provides the short-lived reference-data stores used on the
// bot's read paths: guild configuration, linked player profiles, and osu!
// rank counts. Stores are not authoritative; a miss (or any backend failure,
// which is reported as a miss) falls through to the source of truth.
package cache

import "context"

// Store is a TTL-bounded key/value store. Implementations must be safe for
// concurrent use and must never cache absence: callers only Set values they
// actually observed, so a later legitimate creation is never masked.
//
// The interface is the eviction seam: the in-memory store is unbounded with
// lazy TTL checks, the redis store delegates TTL to the server, and a bounded
// LRU can be dropped in without touching callers.
type Store[V any] interface {
	// Get returns the cached value for key. A value older than the store's
	// TTL is a miss.
	Get(ctx context.Context, key string) (V, bool)

	// Set records value under key, resetting its TTL. After a successful
	// write to the source of truth, callers either Set the exact value just
	// persisted or Invalidate the key; never a pre-write value.
	Set(ctx context.Context, key string, value V)

	// Invalidate drops key. Missing keys are a no-op.
	Invalidate(ctx context.Context, key string)
}
