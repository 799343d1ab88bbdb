package guildservice

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/cache"
	"github.com/osu-rank-club/rankbot/internal/observability"
)

// newTestService builds a GuildService with a passthrough wrapper, a
// passthrough transaction scope, and a fake-clock memory cache.
func newTestService(repo guilddb.Repository, clock clockwork.Clock) *GuildService {
	s := &GuildService{
		repo:        repo,
		configCache: cache.NewMemoryStore[guildtypes.GuildConfig](time.Minute, clock),
		logger:      observability.NoOpLogger,
		metrics:     observability.NoOpMetrics{},
		tracer:      noop.NewTracerProvider().Tracer("test"),
	}
	s.serviceWrapper = func(ctx context.Context, operationName string, guildID sharedtypes.GuildID, serviceFunc func(ctx context.Context) (results.OperationResult, error)) (results.OperationResult, error) {
		return serviceFunc(ctx)
	}
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context, idb bun.IDB) error) error {
		return fn(ctx, nil)
	}
	return s
}

func validConfigFixture() *guildtypes.GuildConfig {
	return &guildtypes.GuildConfig{
		GuildID:              "guild-1",
		CountryCode:          "US",
		CommandsChannelID:    "chan-commands",
		VerifyChannelID:      "chan-verify",
		LeaderboardChannelID: "chan-board",
		VerifiedRoleID:       "role-verified",
		Regime:               "standard",
	}
}
