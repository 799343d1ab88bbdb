package rankservice

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/cache"
	"github.com/osu-rank-club/rankbot/internal/observability"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// testFixture bundles the fakes behind one RankService so tests can reach
// into any collaborator.
type testFixture struct {
	service  *RankService
	rankRepo *FakeRankRepository
	players  *FakePlayerRepository
	guilds   *FakeGuildRepository
	profiles *FakeProfileProvider
	standard *FakeRankCountProvider
	delta    *FakeRankCountProvider
	clock    *clockwork.FakeClock
}

// newTestFixture builds a RankService with a passthrough wrapper, a
// passthrough transaction scope, fake-clock caches, and a default guild with
// the standard regime and a Rookie/Pro ladder.
func newTestFixture() *testFixture {
	f := &testFixture{
		rankRepo: NewFakeRankRepository(),
		players:  NewFakePlayerRepository(),
		guilds:   &FakeGuildRepository{},
		profiles: &FakeProfileProvider{},
		standard: &FakeRankCountProvider{Counts: map[int]int{}},
		delta:    &FakeRankCountProvider{Counts: map[int]int{}},
		clock:    clockwork.NewFakeClock(),
	}
	f.guilds.GetConfigFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
		return &guildtypes.GuildConfig{GuildID: guildID, Regime: rankdomain.RegimeStandard}, nil
	}
	f.guilds.GetLadderFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error) {
		return testLadder(), nil
	}

	s := &RankService{
		repo:       f.rankRepo,
		playerRepo: f.players,
		guildRepo:  f.guilds,
		profiles:   f.profiles,
		counters: map[rankdomain.Regime]osuapi.RankCountProvider{
			rankdomain.RegimeStandard: f.standard,
			rankdomain.RegimeDelta:    f.delta,
		},
		profileCache: cache.NewMemoryStore[osuapi.Profile](time.Minute, f.clock),
		countsCache:  cache.NewMemoryStore[int](time.Minute, f.clock),
		logger:       observability.NoOpLogger,
		metrics:      observability.NoOpMetrics{},
		tracer:       noop.NewTracerProvider().Tracer("test"),
		locks:        newKeyedMutex(),
	}
	s.serviceWrapper = func(ctx context.Context, operationName string, guildID sharedtypes.GuildID, serviceFunc func(ctx context.Context) (results.OperationResult, error)) (results.OperationResult, error) {
		return serviceFunc(ctx)
	}
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context, idb bun.IDB) error) error {
		return fn(ctx, nil)
	}
	f.service = s
	return f
}

func deltaGuildConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	return &guildtypes.GuildConfig{GuildID: guildID, Regime: rankdomain.RegimeDelta}, nil
}

func testLadder() []rankdomain.LadderRole {
	return []rankdomain.LadderRole{
		{RoleID: "", Name: "No Role", MinPoints: 0},
		{RoleID: "role-rookie", Name: "Rookie", MinPoints: 100},
		{RoleID: "role-pro", Name: "Pro", MinPoints: 500},
	}
}
