package guildservice

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// CheckChannel answers whether a command of the given kind may run in the
// given channel. Resolution is a fallback chain: the kind-specific channel
// when configured, otherwise the general commands channel when configured,
// otherwise any channel. On rejection the payload names the first configured
// channel along the chain so the caller can tell the player where the
// command actually works; an allowed check carries no required channel.
func (s *GuildService) CheckChannel(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, kind guildtypes.ChannelKind) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "CheckChannel", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if guildID == "" || channelID == "" {
			err := errors.New("guild and channel IDs are required")
			return results.OperationResult{Error: err}, err
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

		allowed, required := resolveChannelGate(config, channelID, kind)
		return results.OkResult(&guildevents.ChannelCheckedPayload{
			GuildID:           guildID,
			ChannelID:         channelID,
			Kind:              kind,
			Allowed:           allowed,
			RequiredChannelID: required,
		}), nil
	})
}

func resolveChannelGate(config *guildtypes.GuildConfig, channelID sharedtypes.ChannelID, kind guildtypes.ChannelKind) (bool, sharedtypes.ChannelID) {
	if specific := config.RestrictedChannel(kind); specific != "" {
		if specific == channelID {
			return true, ""
		}
		return false, specific
	}
	if general := config.CommandsChannelID; general != "" {
		if general == channelID {
			return true, ""
		}
		return false, general
	}
	return true, ""
}
