package rankdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Repository is the interface for assignment storage.
type Repository interface {
	GetAssignment(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID) (*Assignment, error)
	UpsertAssignment(ctx context.Context, db bun.IDB, assignment *Assignment) error
	ListGuildAssignments(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]Assignment, error)
}
