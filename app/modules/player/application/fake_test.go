package playerservice

import (
	"context"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// FakePlayerRepository is an in-memory playerdb.Repository with programmable
// overrides.
type FakePlayerRepository struct {
	players map[sharedtypes.DiscordID]*playerdb.Player

	CreateFunc func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{players: map[sharedtypes.DiscordID]*playerdb.Player{}}
}

func (f *FakePlayerRepository) GetByDiscordID(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID) (*playerdb.Player, error) {
	if p, ok := f.players[discordID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) GetByOsuID(ctx context.Context, db bun.IDB, osuID sharedtypes.OsuID) (*playerdb.Player, error) {
	for _, p := range f.players {
		if p.OsuID == osuID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	if _, ok := f.players[player.DiscordID]; ok {
		return playerdb.ErrDuplicateRecord
	}
	for _, p := range f.players {
		if p.OsuID == player.OsuID {
			return playerdb.ErrDuplicateRecord
		}
	}
	copied := *player
	f.players[player.DiscordID] = &copied
	return nil
}

func (f *FakePlayerRepository) UpdateScore(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID, score int, username, countryCode string) error {
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

// FakeGuildRepository stubs the config read the linking flow depends on.
type FakeGuildRepository struct {
	Config *guildtypes.GuildConfig
}

func (f *FakeGuildRepository) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.Config == nil {
		return nil, guilddb.ErrNotFound
	}
	copied := *f.Config
	return &copied, nil
}

func (f *FakeGuildRepository) CreateConfig(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error {
	return nil
}

func (f *FakeGuildRepository) UpdateConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *guilddb.UpdateFields) error {
	return nil
}

func (f *FakeGuildRepository) GetLadder(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error) {
	return nil, nil
}

func (f *FakeGuildRepository) AddLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error {
	return nil
}

func (f *FakeGuildRepository) RemoveLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	return nil
}

var _ guilddb.Repository = (*FakeGuildRepository)(nil)

// FakeProfileProvider serves profiles from a username table.
type FakeProfileProvider struct {
	Profiles map[string]*osuapi.Profile

	GetProfileByNameFunc func(ctx context.Context, username string) (*osuapi.Profile, error)
}

func (f *FakeProfileProvider) GetProfileByName(ctx context.Context, username string) (*osuapi.Profile, error) {
	if f.GetProfileByNameFunc != nil {
		return f.GetProfileByNameFunc(ctx, username)
	}
	if p, ok := f.Profiles[username]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, osuapi.ErrNotFound
}

func (f *FakeProfileProvider) GetProfileByID(ctx context.Context, osuID sharedtypes.OsuID) (*osuapi.Profile, error) {
	for _, p := range f.Profiles {
		if p.OsuID == osuID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, osuapi.ErrNotFound
}

var _ osuapi.ProfileProvider = (*FakeProfileProvider)(nil)
