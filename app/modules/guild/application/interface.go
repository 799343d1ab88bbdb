package guildservice

import (
	"context"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Service is the guild module's application surface.
type Service interface {
	GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error)
	SetupGuild(ctx context.Context, config guildtypes.GuildConfig) (results.OperationResult, error)
	UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, updates ConfigUpdates) (results.OperationResult, error)
	GetLadder(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error)
	AddLadderRole(ctx context.Context, guildID sharedtypes.GuildID, role rankdomain.LadderRole) (results.OperationResult, error)
	RemoveLadderRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (results.OperationResult, error)
	CheckChannel(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, kind guildtypes.ChannelKind) (results.OperationResult, error)
}

// ConfigUpdates mirrors guilddb.UpdateFields at the service boundary.
type ConfigUpdates struct {
	CountryCode          *string
	CommandsChannelID    *sharedtypes.ChannelID
	VerifyChannelID      *sharedtypes.ChannelID
	LeaderboardChannelID *sharedtypes.ChannelID
	VerifiedRoleID       *sharedtypes.RoleID
	Regime               *rankdomain.Regime
}
