package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type memoryEntry[V any] struct {
	value      V
	insertedAt time.Time
}

// MemoryStore is an in-process Store with lazy TTL checks on read. Capacity
// is unbounded; entries are only removed when read after expiry or explicitly
// invalidated.
type MemoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry[V]
	ttl     time.Duration
	clock   clockwork.Clock
}

// NewMemoryStore builds a MemoryStore with the given TTL. The clock is
// injectable so TTL behavior is testable with a fake clock.
func NewMemoryStore[V any](ttl time.Duration, clock clockwork.Clock) *MemoryStore[V] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore[V]{
		entries: make(map[string]memoryEntry[V]),
		ttl:     ttl,
		clock:   clock,
	}
}

func (s *MemoryStore[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.clock.Since(entry.insertedAt) >= s.ttl {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, still := s.entries[key]; still && s.clock.Since(current.insertedAt) >= s.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return entry.value, true
}

func (s *MemoryStore[V]) Set(_ context.Context, key string, value V) {
	s.mu.Lock()
	s.entries[key] = memoryEntry[V]{value: value, insertedAt: s.clock.Now()}
	s.mu.Unlock()
}

func (s *MemoryStore[V]) Invalidate(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len reports the number of live and expired-but-unswept entries.
func (s *MemoryStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ Store[struct{}] = (*MemoryStore[struct{}])(nil)
