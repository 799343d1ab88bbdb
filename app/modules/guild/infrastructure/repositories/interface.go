package guilddb

import (
	"context"

	"github.com/uptrace/bun"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Repository is the interface for guild configuration and ladder storage.
// Methods take a bun.IDB so they run identically inside or outside a
// transaction scope.
type Repository interface {
	GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
	CreateConfig(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error
	UpdateConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *UpdateFields) error
	GetLadder(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error)
	AddLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error
	RemoveLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error
}

// UpdateFields carries the optional config mutations; nil fields are left
// untouched.
type UpdateFields struct {
	CountryCode          *string
	CommandsChannelID    *sharedtypes.ChannelID
	VerifyChannelID      *sharedtypes.ChannelID
	LeaderboardChannelID *sharedtypes.ChannelID
	VerifiedRoleID       *sharedtypes.RoleID
	Regime               *rankdomain.Regime
}
