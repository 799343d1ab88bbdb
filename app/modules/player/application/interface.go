package playerservice

import (
	"context"

	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Service is the interface for the player module's application layer.
type Service interface {
	LinkPlayer(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, osuUsername string) (results.OperationResult, error)
	GetPlayer(ctx context.Context, discordID sharedtypes.DiscordID) (results.OperationResult, error)
}
