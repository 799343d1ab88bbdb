package rankdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Assignment is the materialized (guild, player) -> ladder role mapping. The
// unique index on (guild_id, discord_id) makes "exactly one live row per
// pair" structural rather than accidental.
//
// RoleID is the Discord role id of the tier at the time of the last
// evaluation; the floor tier stores an empty RoleID. It may legitimately lag
// behind what the player's current score would resolve to — it is corrected
// on the next submission.
type Assignment struct {
	bun.BaseModel `bun:"table:rank_assignments,alias:ra"`
	ID            int64                 `bun:"id,pk,autoincrement"`
	GuildID       sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	DiscordID     sharedtypes.DiscordID `bun:"discord_id,notnull,type:varchar(20)"`
	RoleID        sharedtypes.RoleID    `bun:"role_id,type:varchar(20)"`
	CreatedAt     time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
