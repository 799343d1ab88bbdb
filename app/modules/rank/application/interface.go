package rankservice

import (
	"context"

	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Service is the interface for the rank module's application layer.
type Service interface {
	ProcessSubmission(ctx context.Context, payload rankevents.SubmissionRequestedPayload) (results.OperationResult, error)
	UpsertAssignment(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, username, countryCode string, score int) (results.OperationResult, error)
	WhatIf(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, overrides map[int]int) (results.OperationResult, error)
}
