// Package guildevents defines the guild module's topics and payloads.
package guildevents

import (
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

const (
	TopicGuildSetupRequested        = "guild.setup.requested"
	TopicGuildSetup                 = "guild.setup"
	TopicGuildSetupFailed           = "guild.setup.failed"
	TopicGuildConfigRequested       = "guild.config.requested"
	TopicGuildConfigRetrieved       = "guild.config.retrieved"
	TopicGuildConfigRetrievalFailed = "guild.config.retrieval.failed"
	TopicGuildConfigUpdateRequested = "guild.config.update.requested"
	TopicGuildConfigUpdated         = "guild.config.updated"
	TopicGuildConfigUpdateFailed    = "guild.config.update.failed"
	TopicLadderRequested            = "guild.ladder.requested"
	TopicLadderRetrieved            = "guild.ladder.retrieved"
	TopicLadderRoleAddRequested     = "guild.ladder.role.add.requested"
	TopicLadderRoleAdded            = "guild.ladder.role.added"
	TopicLadderRoleRemoveRequested  = "guild.ladder.role.remove.requested"
	TopicLadderRoleRemoved          = "guild.ladder.role.removed"
	TopicLadderUpdateFailed         = "guild.ladder.update.failed"
	TopicChannelCheckRequested      = "guild.channel.check.requested"
	TopicChannelChecked             = "guild.channel.checked"
	TopicChannelCheckFailed         = "guild.channel.check.failed"
)

// GuildSetupRequestedPayload asks for a guild to be bootstrapped with its
// initial configuration.
type GuildSetupRequestedPayload struct {
	Config guildtypes.GuildConfig `json:"config"`
}

type GuildConfigRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// GuildConfigUpdateRequestedPayload carries a partial config change; nil
// fields are left untouched.
type GuildConfigUpdateRequestedPayload struct {
	GuildID              sharedtypes.GuildID    `json:"guild_id"`
	CountryCode          *string                `json:"country_code,omitempty"`
	CommandsChannelID    *sharedtypes.ChannelID `json:"commands_channel_id,omitempty"`
	VerifyChannelID      *sharedtypes.ChannelID `json:"verify_channel_id,omitempty"`
	LeaderboardChannelID *sharedtypes.ChannelID `json:"leaderboard_channel_id,omitempty"`
	VerifiedRoleID       *sharedtypes.RoleID    `json:"verified_role_id,omitempty"`
	Regime               *rankdomain.Regime     `json:"regime,omitempty"`
}

type LadderRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

type LadderRoleAddRequestedPayload struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	Role    rankdomain.LadderRole `json:"role"`
}

type LadderRoleRemoveRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

type ChannelCheckRequestedPayload struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	Kind      guildtypes.ChannelKind `json:"kind"`
}

type GuildConfigRetrievedPayload struct {
	GuildID sharedtypes.GuildID     `json:"guild_id"`
	Config  guildtypes.GuildConfig  `json:"config"`
}

type GuildConfigRetrievalFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

type GuildSetupPayload struct {
	GuildID sharedtypes.GuildID    `json:"guild_id"`
	Config  guildtypes.GuildConfig `json:"config"`
}

type GuildSetupFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

type GuildConfigUpdatedPayload struct {
	GuildID sharedtypes.GuildID    `json:"guild_id"`
	Config  guildtypes.GuildConfig `json:"config"`
}

type GuildConfigUpdateFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

type LadderRetrievedPayload struct {
	GuildID sharedtypes.GuildID     `json:"guild_id"`
	Ladder  []rankdomain.LadderRole `json:"ladder"`
}

type LadderRoleAddedPayload struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	Role    rankdomain.LadderRole `json:"role"`
}

type LadderRoleRemovedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

type LadderUpdateFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// ChannelCheckedPayload reports whether a command may run in a channel and,
// when it may not, the channel it must run in instead.
type ChannelCheckedPayload struct {
	GuildID           sharedtypes.GuildID    `json:"guild_id"`
	ChannelID         sharedtypes.ChannelID  `json:"channel_id"`
	Kind              guildtypes.ChannelKind `json:"kind"`
	Allowed           bool                   `json:"allowed"`
	RequiredChannelID sharedtypes.ChannelID  `json:"required_channel_id,omitempty"`
}
