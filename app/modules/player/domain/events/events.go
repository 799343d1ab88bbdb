// Package playerevents defines the player module's topics and payloads.
package playerevents

import (
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

const (
	TopicPlayerLinkRequested   = "player.link.requested"
	TopicPlayerLinked          = "player.linked"
	TopicPlayerLinkFailed      = "player.link.failed"
	TopicPlayerRequested       = "player.requested"
	TopicPlayerRetrieved       = "player.retrieved"
	TopicPlayerRetrievalFailed = "player.retrieval.failed"
)

// PlayerLinkRequestedPayload asks for a Discord account to be linked to an
// osu! account by username.
type PlayerLinkRequestedPayload struct {
	GuildID     sharedtypes.GuildID   `json:"guild_id"`
	DiscordID   sharedtypes.DiscordID `json:"discord_id"`
	OsuUsername string                `json:"osu_username"`
}

type PlayerRequestedPayload struct {
	DiscordID sharedtypes.DiscordID `json:"discord_id"`
}

type PlayerLinkedPayload struct {
	GuildID     sharedtypes.GuildID   `json:"guild_id"`
	DiscordID   sharedtypes.DiscordID `json:"discord_id"`
	OsuID       sharedtypes.OsuID     `json:"osu_id"`
	Username    string                `json:"username"`
	CountryCode string                `json:"country_code"`
}

type PlayerLinkFailedPayload struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	DiscordID sharedtypes.DiscordID `json:"discord_id"`
	Username  string                `json:"username"`
	Reason    string                `json:"reason"`
}

// PlayerRetrievedPayload carries the stored link for profile-style lookups.
type PlayerRetrievedPayload struct {
	DiscordID   sharedtypes.DiscordID `json:"discord_id"`
	OsuID       sharedtypes.OsuID     `json:"osu_id"`
	Username    string                `json:"username"`
	CountryCode string                `json:"country_code"`
	Score       int                   `json:"score"`
}
