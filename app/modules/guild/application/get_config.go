package guildservice

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// GetGuildConfig retrieves the guild configuration through the cache-aside
// read path.
func (s *GuildService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "GetGuildConfig", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if guildID == "" {
			return results.OperationResult{Error: errors.New("invalid guild ID")}, errors.New("invalid guild ID")
		}

		config, err := s.loadConfig(ctx, guildID)
		if err != nil {
			if errors.Is(err, guilddb.ErrNotFound) {
				return results.FailResult(&guildevents.GuildConfigRetrievalFailedPayload{
					GuildID: guildID,
					Reason:  "guild config not found",
				}, err), err
			}
			return results.FailResult(&guildevents.GuildConfigRetrievalFailedPayload{
				GuildID: guildID,
				Reason:  err.Error(),
			}, err), err
		}

		return results.OkResult(&guildevents.GuildConfigRetrievedPayload{
			GuildID: guildID,
			Config:  *config,
		}), nil
	})
}
