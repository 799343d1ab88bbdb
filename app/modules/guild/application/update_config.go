package guildservice

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// UpdateGuildConfig applies partial configuration changes. The cached entry
// is invalidated after the write commits so the next read repopulates from
// the source of truth; a stale pre-write value is never re-cached.
func (s *GuildService) UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, updates ConfigUpdates) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "UpdateGuildConfig", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if guildID == "" {
			return results.OperationResult{Error: errors.New("invalid guild ID")}, errors.New("invalid guild ID")
		}

		fields := &guilddb.UpdateFields{
			CountryCode:          updates.CountryCode,
			CommandsChannelID:    updates.CommandsChannelID,
			VerifyChannelID:      updates.VerifyChannelID,
			LeaderboardChannelID: updates.LeaderboardChannelID,
			VerifiedRoleID:       updates.VerifiedRoleID,
			Regime:               updates.Regime,
		}
		if err := s.repo.UpdateConfig(ctx, s.db, guildID, fields); err != nil {
			reason := err.Error()
			if errors.Is(err, guilddb.ErrNotFound) {
				reason = "guild config not found"
			}
			return results.FailResult(&guildevents.GuildConfigUpdateFailedPayload{
				GuildID: guildID,
				Reason:  reason,
			}, err), err
		}

		s.configCache.Invalidate(ctx, string(guildID))

		config, err := s.loadConfig(ctx, guildID)
		if err != nil {
			return results.FailResult(&guildevents.GuildConfigUpdateFailedPayload{
				GuildID: guildID,
				Reason:  err.Error(),
			}, err), err
		}

		return results.OkResult(&guildevents.GuildConfigUpdatedPayload{
			GuildID: guildID,
			Config:  *config,
		}), nil
	})
}
