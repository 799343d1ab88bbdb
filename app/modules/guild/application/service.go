package guildservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/cache"
	"github.com/osu-rank-club/rankbot/internal/observability"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

// GuildService implements the Service interface.
type GuildService struct {
	db             *bun.DB
	repo           guilddb.Repository
	configCache    cache.Store[guildtypes.GuildConfig]
	logger         *slog.Logger
	metrics        observability.OperationMetrics
	tracer         trace.Tracer
	serviceWrapper func(ctx context.Context, operationName string, guildID sharedtypes.GuildID, serviceFunc func(ctx context.Context) (results.OperationResult, error)) (results.OperationResult, error)
	runInTx        func(ctx context.Context, fn func(ctx context.Context, idb bun.IDB) error) error
}

// NewGuildService creates a new GuildService.
func NewGuildService(
	db *bun.DB,
	repo guilddb.Repository,
	configCache cache.Store[guildtypes.GuildConfig],
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *GuildService {
	s := &GuildService{
		db:          db,
		repo:        repo,
		configCache: configCache,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
	}
	s.serviceWrapper = s.withTelemetry
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context, idb bun.IDB) error) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return fn(ctx, tx)
		})
	}
	return s
}

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery so observability stays uniform across methods.
func (s *GuildService) withTelemetry(
	ctx context.Context,
	operationName string,
	guildID sharedtypes.GuildID,
	op func(ctx context.Context) (results.OperationResult, error),
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, string(guildID))

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, string(guildID), time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("guild_id", string(guildID)),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, string(guildID))
			span.RecordError(err)
			result = results.OperationResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("guild_id", string(guildID)),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, string(guildID))
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("guild_id", string(guildID)),
			attr.Any("failure_type", fmt.Sprintf("%T", result.Failure)),
		)
	}
	return result, nil
}

// loadConfig is the cache-aside read path shared by every config consumer:
// cache hit wins, a miss reads the source of truth and repopulates. Absence
// is never cached.
func (s *GuildService) loadConfig(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if cached, ok := s.configCache.Get(ctx, string(guildID)); ok {
		return &cached, nil
	}
	config, err := s.repo.GetConfig(ctx, s.db, guildID)
	if err != nil {
		return nil, err
	}
	s.configCache.Set(ctx, string(guildID), *config)
	return config, nil
}
