package rankhandlers

import (
	"context"
	"errors"

	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleWhatIfRequested handles the rank.whatif.requested event. What-if
// failures are always terminal (unknown guild, unlinked player, misconfigured
// ladder); only bare errors such as a provider outage propagate for
// redelivery.
func (h *RankHandlers) HandleWhatIfRequested(ctx context.Context, payload *rankevents.WhatIfRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.WhatIf(ctx, payload.GuildID, payload.DiscordID, payload.Overrides)
	if err != nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result,
		rankevents.TopicWhatIfResult,
		rankevents.TopicWhatIfFailed,
	), nil
}
