package rankhandlers

import (
	"context"

	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// FakeRankService provides a programmable stub for the rankservice.Service
// interface.
type FakeRankService struct {
	ProcessSubmissionFunc func(ctx context.Context, payload rankevents.SubmissionRequestedPayload) (results.OperationResult, error)
	UpsertAssignmentFunc  func(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, username, countryCode string, score int) (results.OperationResult, error)
	WhatIfFunc            func(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, overrides map[int]int) (results.OperationResult, error)
}

func (f *FakeRankService) ProcessSubmission(ctx context.Context, payload rankevents.SubmissionRequestedPayload) (results.OperationResult, error) {
	if f.ProcessSubmissionFunc != nil {
		return f.ProcessSubmissionFunc(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeRankService) UpsertAssignment(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, username, countryCode string, score int) (results.OperationResult, error) {
	if f.UpsertAssignmentFunc != nil {
		return f.UpsertAssignmentFunc(ctx, guildID, discordID, username, countryCode, score)
	}
	return results.OperationResult{}, nil
}

func (f *FakeRankService) WhatIf(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, overrides map[int]int) (results.OperationResult, error) {
	if f.WhatIfFunc != nil {
		return f.WhatIfFunc(ctx, guildID, discordID, overrides)
	}
	return results.OperationResult{}, nil
}
