// Package guildtypes holds the guild configuration types passed between the
// guild module and its consumers.
package guildtypes

import (
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// GuildConfig is a guild's bot configuration. Channel and role IDs are
// optional; an empty value means "not configured".
type GuildConfig struct {
	GuildID              sharedtypes.GuildID   `json:"guild_id"`
	CountryCode          string                `json:"country_code,omitempty"`
	CommandsChannelID    sharedtypes.ChannelID `json:"commands_channel_id,omitempty"`
	VerifyChannelID      sharedtypes.ChannelID `json:"verify_channel_id,omitempty"`
	LeaderboardChannelID sharedtypes.ChannelID `json:"leaderboard_channel_id,omitempty"`
	VerifiedRoleID       sharedtypes.RoleID    `json:"verified_role_id,omitempty"`
	Regime               rankdomain.Regime     `json:"regime"`
}

// ChannelKind names the command surfaces a guild can restrict to a channel.
type ChannelKind string

const (
	ChannelKindCommands    ChannelKind = "commands"
	ChannelKindVerify      ChannelKind = "verify"
	ChannelKindLeaderboard ChannelKind = "leaderboard"
)

// RestrictedChannel returns the channel the guild pinned for the given kind,
// or empty when unrestricted.
func (c *GuildConfig) RestrictedChannel(kind ChannelKind) sharedtypes.ChannelID {
	switch kind {
	case ChannelKindVerify:
		return c.VerifyChannelID
	case ChannelKindLeaderboard:
		return c.LeaderboardChannelID
	default:
		return c.CommandsChannelID
	}
}
