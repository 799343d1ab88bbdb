package guildhandlers

import (
	"context"
	"errors"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleLadderRequested handles the guild.ladder.requested event.
func (h *GuildHandlers) HandleLadderRequested(ctx context.Context, payload *guildevents.LadderRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetLadder(ctx, payload.GuildID)
	return respond(result, err,
		guildevents.TopicLadderRetrieved,
		guildevents.TopicLadderUpdateFailed,
	)
}

// HandleLadderRoleAddRequested handles the guild.ladder.role.add.requested
// event.
func (h *GuildHandlers) HandleLadderRoleAddRequested(ctx context.Context, payload *guildevents.LadderRoleAddRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddLadderRole(ctx, payload.GuildID, payload.Role)
	return respond(result, err,
		guildevents.TopicLadderRoleAdded,
		guildevents.TopicLadderUpdateFailed,
	)
}

// HandleLadderRoleRemoveRequested handles the
// guild.ladder.role.remove.requested event.
func (h *GuildHandlers) HandleLadderRoleRemoveRequested(ctx context.Context, payload *guildevents.LadderRoleRemoveRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RemoveLadderRole(ctx, payload.GuildID, payload.RoleID)
	return respond(result, err,
		guildevents.TopicLadderRoleRemoved,
		guildevents.TopicLadderUpdateFailed,
	)
}
