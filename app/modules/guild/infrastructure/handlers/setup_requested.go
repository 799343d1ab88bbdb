package guildhandlers

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleGuildSetupRequested handles the guild.setup.requested event.
func (h *GuildHandlers) HandleGuildSetupRequested(ctx context.Context, payload *guildevents.GuildSetupRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetupGuild(ctx, payload.Config)
	return respond(result, err,
		guildevents.TopicGuildSetup,
		guildevents.TopicGuildSetupFailed,
	)
}
