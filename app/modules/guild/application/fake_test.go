package guildservice

import (
	"context"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// FakeGuildRepository provides a programmable stub for the guilddb.Repository
// interface.
type FakeGuildRepository struct {
	trace []string

	GetConfigFunc        func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
	CreateConfigFunc     func(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error
	UpdateConfigFunc     func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *guilddb.UpdateFields) error
	GetLadderFunc        func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error)
	AddLadderRoleFunc    func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error
	RemoveLadderRoleFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error
}

func NewFakeGuildRepository() *FakeGuildRepository {
	return &FakeGuildRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeGuildRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeGuildRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuildRepository) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	f.record("GetConfig")
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, db, guildID)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepository) CreateConfig(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error {
	f.record("CreateConfig")
	if f.CreateConfigFunc != nil {
		return f.CreateConfigFunc(ctx, db, config)
	}
	return nil
}

func (f *FakeGuildRepository) UpdateConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *guilddb.UpdateFields) error {
	f.record("UpdateConfig")
	if f.UpdateConfigFunc != nil {
		return f.UpdateConfigFunc(ctx, db, guildID, updates)
	}
	return nil
}

func (f *FakeGuildRepository) GetLadder(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error) {
	f.record("GetLadder")
	if f.GetLadderFunc != nil {
		return f.GetLadderFunc(ctx, db, guildID)
	}
	return nil, nil
}

func (f *FakeGuildRepository) AddLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error {
	f.record("AddLadderRole")
	if f.AddLadderRoleFunc != nil {
		return f.AddLadderRoleFunc(ctx, db, guildID, role)
	}
	return nil
}

func (f *FakeGuildRepository) RemoveLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	f.record("RemoveLadderRole")
	if f.RemoveLadderRoleFunc != nil {
		return f.RemoveLadderRoleFunc(ctx, db, guildID, roleID)
	}
	return nil
}

var _ guilddb.Repository = (*FakeGuildRepository)(nil)
