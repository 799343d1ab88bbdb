package guilddb

import (
	"time"

	"github.com/uptrace/bun"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// GuildConfig is the persisted configuration row for one Discord guild.
type GuildConfig struct {
	bun.BaseModel        `bun:"table:guild_configs,alias:g"`
	GuildID              sharedtypes.GuildID   `bun:"guild_id,pk,notnull,type:varchar(20)"`
	CreatedAt            time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt            time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
	CountryCode          string                `bun:"country_code,nullzero,type:varchar(2)"`
	CommandsChannelID    sharedtypes.ChannelID `bun:"commands_channel_id,nullzero,type:varchar(20)"`
	VerifyChannelID      sharedtypes.ChannelID `bun:"verify_channel_id,nullzero,type:varchar(20)"`
	LeaderboardChannelID sharedtypes.ChannelID `bun:"leaderboard_channel_id,nullzero,type:varchar(20)"`
	VerifiedRoleID       sharedtypes.RoleID    `bun:"verified_role_id,nullzero,type:varchar(20)"`
	Regime               rankdomain.Regime     `bun:"regime,notnull,default:'standard',type:varchar(10)"`
}

// LadderRole is one tier of a guild's role ladder. The unique index on
// (guild_id, min_points) makes duplicate thresholds unrepresentable.
type LadderRole struct {
	bun.BaseModel `bun:"table:guild_ladder_roles,alias:lr"`
	ID            int64               `bun:"id,pk,autoincrement"`
	GuildID       sharedtypes.GuildID `bun:"guild_id,notnull,type:varchar(20)"`
	RoleID        sharedtypes.RoleID  `bun:"role_id,type:varchar(20)"`
	Name          string              `bun:"name,notnull,type:varchar(100)"`
	MinPoints     int                 `bun:"min_points,notnull"`
	CreatedAt     time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toSharedConfig(cfg *GuildConfig) *guildtypes.GuildConfig {
	if cfg == nil {
		return nil
	}
	return &guildtypes.GuildConfig{
		GuildID:              cfg.GuildID,
		CountryCode:          cfg.CountryCode,
		CommandsChannelID:    cfg.CommandsChannelID,
		VerifyChannelID:      cfg.VerifyChannelID,
		LeaderboardChannelID: cfg.LeaderboardChannelID,
		VerifiedRoleID:       cfg.VerifiedRoleID,
		Regime:               cfg.Regime,
	}
}

func toDBConfig(cfg *guildtypes.GuildConfig) *GuildConfig {
	if cfg == nil {
		return nil
	}
	return &GuildConfig{
		GuildID:              cfg.GuildID,
		CountryCode:          cfg.CountryCode,
		CommandsChannelID:    cfg.CommandsChannelID,
		VerifyChannelID:      cfg.VerifyChannelID,
		LeaderboardChannelID: cfg.LeaderboardChannelID,
		VerifiedRoleID:       cfg.VerifiedRoleID,
		Regime:               cfg.Regime,
	}
}

func toDomainLadder(roles []LadderRole) []rankdomain.LadderRole {
	out := make([]rankdomain.LadderRole, len(roles))
	for i, r := range roles {
		out[i] = rankdomain.LadderRole{
			RoleID:    r.RoleID,
			Name:      r.Name,
			MinPoints: r.MinPoints,
		}
	}
	return out
}
