package rankservice

import (
	"context"
	"errors"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// WhatIf answers "where would I land if my counts were X" without writing
// anything. It runs the same scoring and resolution code as a real
// submission, so a what-if with no overrides always matches what a submission
// would persist from the same counts.
func (s *RankService) WhatIf(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, overrides map[int]int) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "WhatIf", guildID, func(ctx context.Context) (results.OperationResult, error) {
		config, err := s.guildRepo.GetConfig(ctx, s.db, guildID)
		if err != nil {
			if errors.Is(err, guilddb.ErrNotFound) {
				return results.FailResult(&rankevents.SubmissionFailedPayload{
					GuildID:   guildID,
					DiscordID: discordID,
					Reason:    ErrGuildNotFound.Error(),
				}, ErrGuildNotFound), ErrGuildNotFound
			}
			return results.OperationResult{Error: err}, err
		}
		ladder, err := s.guildRepo.GetLadder(ctx, s.db, guildID)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}

		player, err := s.playerRepo.GetByDiscordID(ctx, s.db, discordID)
		if err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailResult(&rankevents.SubmissionFailedPayload{
					GuildID:   guildID,
					DiscordID: discordID,
					Reason:    ErrPlayerNotLinked.Error(),
				}, ErrPlayerNotLinked), ErrPlayerNotLinked
			}
			return results.OperationResult{Error: err}, err
		}

		counts, err := s.fetchCounts(ctx, config.Regime, player.OsuID, player.Username)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}

		currentScore, err := config.Regime.Score(counts)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}
		projectedScore, err := config.Regime.ScoreWithOverrides(counts, overrides)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}

		currentRole, err := rankdomain.ResolveRole(ladder, currentScore)
		if err != nil {
			return results.FailResult(&rankevents.SubmissionFailedPayload{
				GuildID:   guildID,
				DiscordID: discordID,
				Reason:    err.Error(),
			}, err), err
		}
		projectedRole, err := rankdomain.ResolveRole(ladder, projectedScore)
		if err != nil {
			return results.FailResult(&rankevents.SubmissionFailedPayload{
				GuildID:   guildID,
				DiscordID: discordID,
				Reason:    err.Error(),
			}, err), err
		}

		return results.OkResult(&rankevents.WhatIfResultPayload{
			GuildID:        guildID,
			DiscordID:      discordID,
			CurrentScore:   currentScore,
			ProjectedScore: projectedScore,
			CurrentRole:    rankevents.RoleRef{RoleID: currentRole.RoleID, Name: currentRole.Name},
			ProjectedRole:  rankevents.RoleRef{RoleID: projectedRole.RoleID, Name: projectedRole.Name},
		}), nil
	})
}
