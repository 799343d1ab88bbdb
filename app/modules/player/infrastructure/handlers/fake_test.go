package playerhandlers

import (
	"context"

	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// FakePlayerService provides a programmable stub for the
// playerservice.Service interface.
type FakePlayerService struct {
	LinkPlayerFunc func(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, osuUsername string) (results.OperationResult, error)
	GetPlayerFunc  func(ctx context.Context, discordID sharedtypes.DiscordID) (results.OperationResult, error)
}

func (f *FakePlayerService) LinkPlayer(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, osuUsername string) (results.OperationResult, error) {
	if f.LinkPlayerFunc != nil {
		return f.LinkPlayerFunc(ctx, guildID, discordID, osuUsername)
	}
	return results.OperationResult{}, nil
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, discordID sharedtypes.DiscordID) (results.OperationResult, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, discordID)
	}
	return results.OperationResult{}, nil
}
