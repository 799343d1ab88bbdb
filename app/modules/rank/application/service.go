package rankservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	rankdb "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/cache"
	"github.com/osu-rank-club/rankbot/internal/observability"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// RankService implements the Service interface: it converts external
// leaderboard counts into points and keeps the per-guild role assignments in
// step with them.
type RankService struct {
	db           *bun.DB
	repo         rankdb.Repository
	playerRepo   playerdb.Repository
	guildRepo    guilddb.Repository
	profiles     osuapi.ProfileProvider
	counters     map[rankdomain.Regime]osuapi.RankCountProvider
	profileCache cache.Store[osuapi.Profile]
	countsCache  cache.Store[int]
	logger       *slog.Logger
	metrics      observability.OperationMetrics
	tracer       trace.Tracer
	locks        *keyedMutex

	serviceWrapper func(ctx context.Context, operationName string, guildID sharedtypes.GuildID, serviceFunc func(ctx context.Context) (results.OperationResult, error)) (results.OperationResult, error)
	runInTx        func(ctx context.Context, fn func(ctx context.Context, idb bun.IDB) error) error
}

// NewRankService creates a new RankService. counters must hold one
// RankCountProvider per supported regime.
func NewRankService(
	db *bun.DB,
	repo rankdb.Repository,
	playerRepo playerdb.Repository,
	guildRepo guilddb.Repository,
	profiles osuapi.ProfileProvider,
	counters map[rankdomain.Regime]osuapi.RankCountProvider,
	profileCache cache.Store[osuapi.Profile],
	countsCache cache.Store[int],
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *RankService {
	s := &RankService{
		db:           db,
		repo:         repo,
		playerRepo:   playerRepo,
		guildRepo:    guildRepo,
		profiles:     profiles,
		counters:     counters,
		profileCache: profileCache,
		countsCache:  countsCache,
		logger:       logger,
		metrics:      metrics,
		tracer:       tracer,
		locks:        newKeyedMutex(),
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
func (s *RankService) withTelemetry(
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
