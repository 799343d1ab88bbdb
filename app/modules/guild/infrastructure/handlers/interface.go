package guildhandlers

import (
	"context"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// Handlers is the interface the guild router registers against.
type Handlers interface {
	HandleGuildSetupRequested(ctx context.Context, payload *guildevents.GuildSetupRequestedPayload) ([]handlerwrapper.Result, error)
	HandleGuildConfigRequested(ctx context.Context, payload *guildevents.GuildConfigRequestedPayload) ([]handlerwrapper.Result, error)
	HandleGuildConfigUpdateRequested(ctx context.Context, payload *guildevents.GuildConfigUpdateRequestedPayload) ([]handlerwrapper.Result, error)
	HandleLadderRequested(ctx context.Context, payload *guildevents.LadderRequestedPayload) ([]handlerwrapper.Result, error)
	HandleLadderRoleAddRequested(ctx context.Context, payload *guildevents.LadderRoleAddRequestedPayload) ([]handlerwrapper.Result, error)
	HandleLadderRoleRemoveRequested(ctx context.Context, payload *guildevents.LadderRoleRemoveRequestedPayload) ([]handlerwrapper.Result, error)
	HandleChannelCheckRequested(ctx context.Context, payload *guildevents.ChannelCheckRequestedPayload) ([]handlerwrapper.Result, error)
}
