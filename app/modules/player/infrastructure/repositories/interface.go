package playerdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Repository is the interface for player storage.
type Repository interface {
	GetByDiscordID(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID) (*Player, error)
	GetByOsuID(ctx context.Context, db bun.IDB, osuID sharedtypes.OsuID) (*Player, error)
	Create(ctx context.Context, db bun.IDB, player *Player) error
	UpdateScore(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID, score int, username, countryCode string) error
}
