package guildhandlers

import (
	"context"

	guildservice "github.com/osu-rank-club/rankbot/app/modules/guild/application"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// FakeGuildService provides a programmable stub for the guildservice.Service
// interface.
type FakeGuildService struct {
	GetGuildConfigFunc    func(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error)
	SetupGuildFunc        func(ctx context.Context, config guildtypes.GuildConfig) (results.OperationResult, error)
	UpdateGuildConfigFunc func(ctx context.Context, guildID sharedtypes.GuildID, updates guildservice.ConfigUpdates) (results.OperationResult, error)
	GetLadderFunc         func(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error)
	AddLadderRoleFunc     func(ctx context.Context, guildID sharedtypes.GuildID, role rankdomain.LadderRole) (results.OperationResult, error)
	RemoveLadderRoleFunc  func(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (results.OperationResult, error)
	CheckChannelFunc      func(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, kind guildtypes.ChannelKind) (results.OperationResult, error)
}

func (f *FakeGuildService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error) {
	if f.GetGuildConfigFunc != nil {
		return f.GetGuildConfigFunc(ctx, guildID)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) SetupGuild(ctx context.Context, config guildtypes.GuildConfig) (results.OperationResult, error) {
	if f.SetupGuildFunc != nil {
		return f.SetupGuildFunc(ctx, config)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, updates guildservice.ConfigUpdates) (results.OperationResult, error) {
	if f.UpdateGuildConfigFunc != nil {
		return f.UpdateGuildConfigFunc(ctx, guildID, updates)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) GetLadder(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error) {
	if f.GetLadderFunc != nil {
		return f.GetLadderFunc(ctx, guildID)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) AddLadderRole(ctx context.Context, guildID sharedtypes.GuildID, role rankdomain.LadderRole) (results.OperationResult, error) {
	if f.AddLadderRoleFunc != nil {
		return f.AddLadderRoleFunc(ctx, guildID, role)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) RemoveLadderRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (results.OperationResult, error) {
	if f.RemoveLadderRoleFunc != nil {
		return f.RemoveLadderRoleFunc(ctx, guildID, roleID)
	}
	return results.OperationResult{}, nil
}

func (f *FakeGuildService) CheckChannel(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, kind guildtypes.ChannelKind) (results.OperationResult, error) {
	if f.CheckChannelFunc != nil {
		return f.CheckChannelFunc(ctx, guildID, channelID, kind)
	}
	return results.OperationResult{}, nil
}
