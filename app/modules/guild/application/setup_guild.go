package guildservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
)

// SetupGuild bootstraps a guild on first join: the config row plus the
// sentinel floor role, created in one transaction. The cache is primed with
// exactly the value just persisted.
func (s *GuildService) SetupGuild(ctx context.Context, config guildtypes.GuildConfig) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "SetupGuild", config.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if config.GuildID == "" {
			return results.OperationResult{Error: errors.New("invalid guild ID")}, errors.New("invalid guild ID")
		}
		if config.Regime == "" {
			config.Regime = rankdomain.RegimeStandard
		}
		if !config.Regime.Valid() {
			err := errors.New("unknown scoring regime")
			return results.FailResult(&guildevents.GuildSetupFailedPayload{
				GuildID: config.GuildID,
				Reason:  err.Error(),
			}, err), err
		}

		err := s.runInTx(ctx, func(ctx context.Context, idb bun.IDB) error {
			return s.repo.CreateConfig(ctx, idb, &config)
		})
		if err != nil {
			if errors.Is(err, guilddb.ErrDuplicateRecord) {
				return results.FailResult(&guildevents.GuildSetupFailedPayload{
					GuildID: config.GuildID,
					Reason:  "guild already set up",
				}, err), err
			}
			return results.FailResult(&guildevents.GuildSetupFailedPayload{
				GuildID: config.GuildID,
				Reason:  err.Error(),
			}, err), err
		}

		s.configCache.Set(ctx, string(config.GuildID), config)

		return results.OkResult(&guildevents.GuildSetupPayload{
			GuildID: config.GuildID,
			Config:  config,
		}), nil
	})
}
