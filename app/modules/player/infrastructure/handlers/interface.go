package playerhandlers

import (
	"context"

	playerevents "github.com/osu-rank-club/rankbot/app/modules/player/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// Handlers is the interface the player router registers against.
type Handlers interface {
	HandlePlayerLinkRequested(ctx context.Context, payload *playerevents.PlayerLinkRequestedPayload) ([]handlerwrapper.Result, error)
	HandlePlayerRequested(ctx context.Context, payload *playerevents.PlayerRequestedPayload) ([]handlerwrapper.Result, error)
}
