// Package sharedtypes holds the identifier types passed between modules.
package sharedtypes

// GuildID is a Discord guild (server) identifier.
type GuildID string

// DiscordID is a Discord account identifier.
type DiscordID string

// ChannelID is a Discord channel identifier.
type ChannelID string

// RoleID is a Discord role identifier. The ladder's floor tier carries an
// empty RoleID ("no role").
type RoleID string

// OsuID is an osu! account identifier.
type OsuID int64
