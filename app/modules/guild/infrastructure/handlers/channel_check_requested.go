package guildhandlers

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleChannelCheckRequested handles the guild.channel.check.requested
// event. Both verdicts publish a checked event; only a config lookup failure
// publishes to the failed topic.
func (h *GuildHandlers) HandleChannelCheckRequested(ctx context.Context, payload *guildevents.ChannelCheckRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.CheckChannel(ctx, payload.GuildID, payload.ChannelID, payload.Kind)
	return respond(result, err,
		guildevents.TopicChannelChecked,
		guildevents.TopicChannelCheckFailed,
	)
}
