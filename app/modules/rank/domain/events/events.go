// Package rankevents defines the rank module's topics and payloads.
package rankevents

import (
	"time"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

const (
	TopicSubmissionRequested = "rank.submission.requested"
	TopicSubmissionSucceeded = "rank.submission.succeeded"
	TopicSubmissionFailed    = "rank.submission.failed"
	TopicWhatIfRequested     = "rank.whatif.requested"
	TopicWhatIfResult        = "rank.whatif.result"
	TopicWhatIfFailed        = "rank.whatif.failed"
)

// RoleRef identifies one ladder tier by Discord role id and display name. The
// floor tier has an empty RoleID.
type RoleRef struct {
	RoleID sharedtypes.RoleID `json:"role_id"`
	Name   string             `json:"name"`
}

// AssignmentResult describes the outcome of one assignment upsert: the score
// that was evaluated, how it moved, and which roles the consumer must swap on
// the Discord side.
type AssignmentResult struct {
	GuildID           sharedtypes.GuildID   `json:"guild_id"`
	DiscordID         sharedtypes.DiscordID `json:"discord_id"`
	Inserted          bool                  `json:"inserted"`
	Score             int                   `json:"score"`
	Delta             int                   `json:"delta"`
	PreviousRole      *RoleRef              `json:"previous_role,omitempty"`
	NewRole           RoleRef               `json:"new_role"`
	PreviousUpdatedAt *time.Time            `json:"previous_updated_at,omitempty"`
}

// RoleChanged reports whether the consumer has any Discord role swap to do.
func (r AssignmentResult) RoleChanged() bool {
	return r.PreviousRole == nil || r.PreviousRole.RoleID != r.NewRole.RoleID
}

// SubmissionRequestedPayload asks the rank module to re-evaluate one player
// in one guild from the external leaderboard sources.
type SubmissionRequestedPayload struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	DiscordID sharedtypes.DiscordID `json:"discord_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id,omitempty"`
}

type SubmissionSucceededPayload struct {
	Result AssignmentResult `json:"result"`
	Counts []int            `json:"counts"`
}

type SubmissionFailedPayload struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	DiscordID sharedtypes.DiscordID `json:"discord_id"`
	Reason    string                `json:"reason"`
	Retryable bool                  `json:"retryable"`
}

// WhatIfRequestedPayload asks where a player would land if some of their
// counts were replaced, keyed by threshold.
type WhatIfRequestedPayload struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	DiscordID sharedtypes.DiscordID `json:"discord_id"`
	Overrides map[int]int           `json:"overrides,omitempty"`
}

// WhatIfResultPayload is the answer to a hypothetical scoring question. No
// state was touched computing it.
type WhatIfResultPayload struct {
	GuildID        sharedtypes.GuildID   `json:"guild_id"`
	DiscordID      sharedtypes.DiscordID `json:"discord_id"`
	CurrentScore   int                   `json:"current_score"`
	ProjectedScore int                   `json:"projected_score"`
	CurrentRole    RoleRef               `json:"current_role"`
	ProjectedRole  RoleRef               `json:"projected_role"`
}
