package rankservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// ProcessSubmission runs the full submission pipeline: resolve the guild's
// scoring regime, find the linked osu! account, refresh its profile, gather
// the rank counts, compute the score, and upsert the assignment.
func (s *RankService) ProcessSubmission(ctx context.Context, payload rankevents.SubmissionRequestedPayload) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "ProcessSubmission", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		config, err := s.guildRepo.GetConfig(ctx, s.db, payload.GuildID)
		if err != nil {
			if errors.Is(err, guilddb.ErrNotFound) {
				return s.submissionFailure(payload, ErrGuildNotFound.Error(), false, ErrGuildNotFound)
			}
			return results.OperationResult{Error: err}, err
		}

		player, err := s.playerRepo.GetByDiscordID(ctx, s.db, payload.DiscordID)
		if err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return s.submissionFailure(payload, ErrPlayerNotLinked.Error(), false, ErrPlayerNotLinked)
			}
			return results.OperationResult{Error: err}, err
		}

		profile, err := s.loadProfile(ctx, player.OsuID)
		if err != nil {
			if errors.Is(err, osuapi.ErrProviderUnavailable) {
				return s.submissionFailure(payload, "osu! API unavailable", true, err)
			}
			if errors.Is(err, osuapi.ErrNotFound) {
				return s.submissionFailure(payload, "osu! account no longer exists", false, err)
			}
			return results.OperationResult{Error: err}, err
		}
		if profile.Status != osuapi.AccountStatusNormal {
			err := fmt.Errorf("osu! account is %s", profile.Status)
			return s.submissionFailure(payload, err.Error(), false, err)
		}

		counts, err := s.fetchCounts(ctx, config.Regime, profile.OsuID, profile.Username)
		if err != nil {
			if errors.Is(err, osuapi.ErrProviderUnavailable) {
				return s.submissionFailure(payload, "leaderboard source unavailable", true, err)
			}
			return results.OperationResult{Error: err}, err
		}

		score, err := config.Regime.Score(counts)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}

		s.logger.InfoContext(ctx, "Submission scored",
			attr.ExtractCorrelationID(ctx),
			attr.String("guild_id", string(payload.GuildID)),
			attr.String("osu_username", profile.Username),
			attr.String("regime", string(config.Regime)),
			attr.Int("score", score),
		)

		upserted, err := s.UpsertAssignment(ctx, payload.GuildID, payload.DiscordID, profile.Username, profile.CountryCode, score)
		if err != nil {
			return upserted, err
		}
		result, ok := upserted.Success.(*rankevents.AssignmentResult)
		if !ok {
			err := fmt.Errorf("unexpected upsert payload %T", upserted.Success)
			return results.OperationResult{Error: err}, err
		}

		return results.OkResult(&rankevents.SubmissionSucceededPayload{
			Result: *result,
			Counts: counts,
		}), nil
	})
}

// loadProfile is the cache-aside profile read keyed by osu! id.
func (s *RankService) loadProfile(ctx context.Context, osuID sharedtypes.OsuID) (*osuapi.Profile, error) {
	key := strconv.FormatInt(int64(osuID), 10)
	if cached, ok := s.profileCache.Get(ctx, key); ok {
		return &cached, nil
	}
	profile, err := s.profiles.GetProfileByID(ctx, osuID)
	if err != nil {
		return nil, err
	}
	s.profileCache.Set(ctx, key, *profile)
	return profile, nil
}

func (s *RankService) submissionFailure(payload rankevents.SubmissionRequestedPayload, reason string, retryable bool, err error) (results.OperationResult, error) {
	return results.FailResult(&rankevents.SubmissionFailedPayload{
		GuildID:   payload.GuildID,
		DiscordID: payload.DiscordID,
		Reason:    reason,
		Retryable: retryable,
	}, err), err
}
