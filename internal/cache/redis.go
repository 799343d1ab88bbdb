package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

// RedisStore is a Store backed by redis with server-side TTL. Values are
// stored as JSON under "<prefix>:<key>". Any backend or codec failure is
// reported as a miss so callers fall through to the source of truth.
type RedisStore[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore[V any](client redis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) *RedisStore[V] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RedisStore[V]{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (s *RedisStore[V]) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WarnContext(ctx, "Cache read failed, treating as miss",
				attr.String("key", s.key(key)),
				attr.Error(err),
			)
		}
		return zero, false
	}

	var value V
	if err := json.Unmarshal(raw, &value); err != nil {
		// Undecodable entries are poison; drop them so the next write repopulates.
		s.logger.WarnContext(ctx, "Cache entry undecodable, dropping",
			attr.String("key", s.key(key)),
			attr.Error(err),
		)
		s.client.Del(ctx, s.key(key))
		return zero, false
	}
	return value, true
}

func (s *RedisStore[V]) Set(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "Cache value unencodable, skipping",
			attr.String("key", s.key(key)),
			attr.Error(err),
		)
		return
	}
	if err := s.client.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "Cache write failed",
			attr.String("key", s.key(key)),
			attr.Error(err),
		)
	}
}

func (s *RedisStore[V]) Invalidate(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.logger.WarnContext(ctx, "Cache invalidation failed",
			attr.String("key", s.key(key)),
			attr.Error(err),
		)
	}
}

var _ Store[struct{}] = (*RedisStore[struct{}])(nil)
