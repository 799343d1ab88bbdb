package playerservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerevents "github.com/osu-rank-club/rankbot/app/modules/player/domain/events"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// LinkPlayer verifies an osu! username against the live API and stores the
// Discord-to-osu! link. The link is one-to-one both ways: a Discord account
// links once, and an osu! account cannot be claimed twice.
func (s *PlayerService) LinkPlayer(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, osuUsername string) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "LinkPlayer", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if discordID == "" || osuUsername == "" {
			err := errors.New("discord ID and osu! username are required")
			return results.OperationResult{Error: err}, err
		}

		config, err := s.guildRepo.GetConfig(ctx, s.db, guildID)
		if err != nil {
			if errors.Is(err, guilddb.ErrNotFound) {
				return s.linkFailure(guildID, discordID, osuUsername, "guild not configured", err)
			}
			return results.OperationResult{Error: err}, err
		}

		profile, err := s.profiles.GetProfileByName(ctx, osuUsername)
		if err != nil {
			if errors.Is(err, osuapi.ErrNotFound) {
				return s.linkFailure(guildID, discordID, osuUsername, fmt.Sprintf("no osu! player named %q", osuUsername), err)
			}
			if errors.Is(err, osuapi.ErrProviderUnavailable) {
				return s.linkFailure(guildID, discordID, osuUsername, "osu! API unavailable, try again later", err)
			}
			return results.OperationResult{Error: err}, err
		}
		if profile.Status != osuapi.AccountStatusNormal {
			err := fmt.Errorf("osu! account is %s", profile.Status)
			return s.linkFailure(guildID, discordID, osuUsername, err.Error(), err)
		}
		if !countryAllowed(config.CountryCode, profile.CountryCode) {
			err := fmt.Errorf("guild is restricted to country %s", config.CountryCode)
			return s.linkFailure(guildID, discordID, osuUsername, err.Error(), err)
		}

		err = s.runInTx(ctx, func(ctx context.Context, idb bun.IDB) error {
			return s.repo.Create(ctx, idb, &playerdb.Player{
				DiscordID:   discordID,
				OsuID:       profile.OsuID,
				Username:    profile.Username,
				CountryCode: profile.CountryCode,
			})
		})
		if err != nil {
			if errors.Is(err, playerdb.ErrDuplicateRecord) {
				return s.linkFailure(guildID, discordID, osuUsername, "account already linked", err)
			}
			return results.OperationResult{Error: err}, err
		}

		s.profileCache.Set(ctx, strconv.FormatInt(int64(profile.OsuID), 10), *profile)

		s.logger.InfoContext(ctx, "Player linked",
			attr.ExtractCorrelationID(ctx),
			attr.String("guild_id", string(guildID)),
			attr.String("discord_id", string(discordID)),
			attr.Int64("osu_id", int64(profile.OsuID)),
			attr.String("osu_username", profile.Username),
		)

		return results.OkResult(&playerevents.PlayerLinkedPayload{
			GuildID:     guildID,
			DiscordID:   discordID,
			OsuID:       profile.OsuID,
			Username:    profile.Username,
			CountryCode: profile.CountryCode,
		}), nil
	})
}

// GetPlayer returns the stored link for one Discord account.
func (s *PlayerService) GetPlayer(ctx context.Context, discordID sharedtypes.DiscordID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "GetPlayer", "", func(ctx context.Context) (results.OperationResult, error) {
		player, err := s.repo.GetByDiscordID(ctx, s.db, discordID)
		if err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailResult(&playerevents.PlayerLinkFailedPayload{
					DiscordID: discordID,
					Reason:    "player not linked",
				}, err), err
			}
			return results.OperationResult{Error: err}, err
		}
		return results.OkResult(&playerevents.PlayerRetrievedPayload{
			DiscordID:   player.DiscordID,
			OsuID:       player.OsuID,
			Username:    player.Username,
			CountryCode: player.CountryCode,
			Score:       player.Score,
		}), nil
	})
}

func (s *PlayerService) linkFailure(guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, username, reason string, err error) (results.OperationResult, error) {
	return results.FailResult(&playerevents.PlayerLinkFailedPayload{
		GuildID:   guildID,
		DiscordID: discordID,
		Username:  username,
		Reason:    reason,
	}, err), err
}
