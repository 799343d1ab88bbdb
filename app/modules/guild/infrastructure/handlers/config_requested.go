package guildhandlers

import (
	"context"
	"errors"

	guildservice "github.com/osu-rank-club/rankbot/app/modules/guild/application"
	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleGuildConfigRequested handles the guild.config.requested event.
func (h *GuildHandlers) HandleGuildConfigRequested(ctx context.Context, payload *guildevents.GuildConfigRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetGuildConfig(ctx, payload.GuildID)
	return respond(result, err,
		guildevents.TopicGuildConfigRetrieved,
		guildevents.TopicGuildConfigRetrievalFailed,
	)
}

// HandleGuildConfigUpdateRequested handles the guild.config.update.requested
// event.
func (h *GuildHandlers) HandleGuildConfigUpdateRequested(ctx context.Context, payload *guildevents.GuildConfigUpdateRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.UpdateGuildConfig(ctx, payload.GuildID, guildservice.ConfigUpdates{
		CountryCode:          payload.CountryCode,
		CommandsChannelID:    payload.CommandsChannelID,
		VerifyChannelID:      payload.VerifyChannelID,
		LeaderboardChannelID: payload.LeaderboardChannelID,
		VerifiedRoleID:       payload.VerifiedRoleID,
		Regime:               payload.Regime,
	})
	return respond(result, err,
		guildevents.TopicGuildConfigUpdated,
		guildevents.TopicGuildConfigUpdateFailed,
	)
}
