package rankservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	rankdb "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// FakeRankRepository provides a programmable stub for the rankdb.Repository
// interface. With no Func overrides it behaves like an empty in-memory table.
type FakeRankRepository struct {
	trace       []string
	assignments map[string]*rankdb.Assignment

	GetAssignmentFunc        func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID) (*rankdb.Assignment, error)
	UpsertAssignmentFunc     func(ctx context.Context, db bun.IDB, assignment *rankdb.Assignment) error
	ListGuildAssignmentsFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdb.Assignment, error)
}

func NewFakeRankRepository() *FakeRankRepository {
	return &FakeRankRepository{
		trace:       []string{},
		assignments: map[string]*rankdb.Assignment{},
	}
}

func (f *FakeRankRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRankRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRankRepository) GetAssignment(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID) (*rankdb.Assignment, error) {
	f.record("GetAssignment")
	if f.GetAssignmentFunc != nil {
		return f.GetAssignmentFunc(ctx, db, guildID, discordID)
	}
	if a, ok := f.assignments[assignmentKey(guildID, discordID)]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, rankdb.ErrNotFound
}

func (f *FakeRankRepository) UpsertAssignment(ctx context.Context, db bun.IDB, assignment *rankdb.Assignment) error {
	f.record("UpsertAssignment")
	if f.UpsertAssignmentFunc != nil {
		return f.UpsertAssignmentFunc(ctx, db, assignment)
	}
	copied := *assignment
	f.assignments[assignmentKey(assignment.GuildID, assignment.DiscordID)] = &copied
	return nil
}

func (f *FakeRankRepository) ListGuildAssignments(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdb.Assignment, error) {
	f.record("ListGuildAssignments")
	if f.ListGuildAssignmentsFunc != nil {
		return f.ListGuildAssignmentsFunc(ctx, db, guildID)
	}
	var out []rankdb.Assignment
	for _, a := range f.assignments {
		if a.GuildID == guildID {
			out = append(out, *a)
		}
	}
	return out, nil
}

var _ rankdb.Repository = (*FakeRankRepository)(nil)

// FakePlayerRepository provides a programmable stub for the
// playerdb.Repository interface backed by an in-memory table.
type FakePlayerRepository struct {
	trace   []string
	players map[sharedtypes.DiscordID]*playerdb.Player

	GetByDiscordIDFunc func(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID) (*playerdb.Player, error)
	GetByOsuIDFunc     func(ctx context.Context, db bun.IDB, osuID sharedtypes.OsuID) (*playerdb.Player, error)
	CreateFunc         func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	UpdateScoreFunc    func(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID, score int, username, countryCode string) error
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{
		trace:   []string{},
		players: map[sharedtypes.DiscordID]*playerdb.Player{},
	}
}

func (f *FakePlayerRepository) Seed(player playerdb.Player) {
	f.players[player.DiscordID] = &player
}

func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) GetByDiscordID(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID) (*playerdb.Player, error) {
	f.record("GetByDiscordID")
	if f.GetByDiscordIDFunc != nil {
		return f.GetByDiscordIDFunc(ctx, db, discordID)
	}
	if p, ok := f.players[discordID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) GetByOsuID(ctx context.Context, db bun.IDB, osuID sharedtypes.OsuID) (*playerdb.Player, error) {
	f.record("GetByOsuID")
	if f.GetByOsuIDFunc != nil {
		return f.GetByOsuIDFunc(ctx, db, osuID)
	}
	for _, p := range f.players {
		if p.OsuID == osuID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	if _, ok := f.players[player.DiscordID]; ok {
		return playerdb.ErrDuplicateRecord
	}
	copied := *player
	f.players[player.DiscordID] = &copied
	return nil
}

func (f *FakePlayerRepository) UpdateScore(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID, score int, username, countryCode string) error {
	f.record("UpdateScore")
	if f.UpdateScoreFunc != nil {
		return f.UpdateScoreFunc(ctx, db, discordID, score, username, countryCode)
	}
	p, ok := f.players[discordID]
	if !ok {
		return playerdb.ErrNotFound
	}
	p.Score = score
	p.Username = username
	p.CountryCode = countryCode
	return nil
}

var _ playerdb.Repository = (*FakePlayerRepository)(nil)

// FakeGuildRepository stubs the slice of guilddb.Repository the rank module
// reads: config and ladder.
type FakeGuildRepository struct {
	GetConfigFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
	GetLadderFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error)
}

func (f *FakeGuildRepository) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, db, guildID)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepository) GetLadder(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error) {
	if f.GetLadderFunc != nil {
		return f.GetLadderFunc(ctx, db, guildID)
	}
	return nil, nil
}

func (f *FakeGuildRepository) CreateConfig(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error {
	return nil
}

func (f *FakeGuildRepository) UpdateConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *guilddb.UpdateFields) error {
	return nil
}

func (f *FakeGuildRepository) AddLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error {
	return nil
}

func (f *FakeGuildRepository) RemoveLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	return nil
}

var _ guilddb.Repository = (*FakeGuildRepository)(nil)

// FakeProfileProvider stubs the osu! profile client.
type FakeProfileProvider struct {
	GetProfileByNameFunc func(ctx context.Context, username string) (*osuapi.Profile, error)
	GetProfileByIDFunc   func(ctx context.Context, osuID sharedtypes.OsuID) (*osuapi.Profile, error)
}

func (f *FakeProfileProvider) GetProfileByName(ctx context.Context, username string) (*osuapi.Profile, error) {
	if f.GetProfileByNameFunc != nil {
		return f.GetProfileByNameFunc(ctx, username)
	}
	return nil, osuapi.ErrNotFound
}

func (f *FakeProfileProvider) GetProfileByID(ctx context.Context, osuID sharedtypes.OsuID) (*osuapi.Profile, error) {
	if f.GetProfileByIDFunc != nil {
		return f.GetProfileByIDFunc(ctx, osuID)
	}
	return nil, osuapi.ErrNotFound
}

var _ osuapi.ProfileProvider = (*FakeProfileProvider)(nil)

// FakeRankCountProvider serves counts from a threshold table and counts its
// upstream calls. Safe for the concurrent fan-out.
type FakeRankCountProvider struct {
	mu     sync.Mutex
	calls  int
	Counts map[int]int

	CountAtRankFunc func(ctx context.Context, username string, threshold int) (int, error)
}

func (f *FakeRankCountProvider) CountAtRank(ctx context.Context, username string, threshold int) (int, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.CountAtRankFunc != nil {
		return f.CountAtRankFunc(ctx, username, threshold)
	}
	return f.Counts[threshold], nil
}

func (f *FakeRankCountProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var _ osuapi.RankCountProvider = (*FakeRankCountProvider)(nil)
