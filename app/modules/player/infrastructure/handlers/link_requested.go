package playerhandlers

import (
	"context"
	"errors"

	playerevents "github.com/osu-rank-club/rankbot/app/modules/player/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandlePlayerLinkRequested handles the player.link.requested event. Link
// rejections (unknown username, restricted country, already linked, API
// outage) are answered with a failed event; only unexpected errors propagate
// for redelivery.
func (h *PlayerHandlers) HandlePlayerLinkRequested(ctx context.Context, payload *playerevents.PlayerLinkRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.LinkPlayer(ctx, payload.GuildID, payload.DiscordID, payload.OsuUsername)
	return respond(result, err,
		playerevents.TopicPlayerLinked,
		playerevents.TopicPlayerLinkFailed,
	)
}

// HandlePlayerRequested handles the player.requested event.
func (h *PlayerHandlers) HandlePlayerRequested(ctx context.Context, payload *playerevents.PlayerRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetPlayer(ctx, payload.DiscordID)
	return respond(result, err,
		playerevents.TopicPlayerRetrieved,
		playerevents.TopicPlayerRetrievalFailed,
	)
}
