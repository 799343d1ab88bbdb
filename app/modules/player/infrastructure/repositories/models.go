package playerdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// Player links one Discord account to one osu! account. The link is created
// once at verification time and is immutable afterwards; score, username, and
// country are refreshed on every assignment upsert.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`
	DiscordID     sharedtypes.DiscordID `bun:"discord_id,pk,notnull,type:varchar(20)"`
	OsuID         sharedtypes.OsuID     `bun:"osu_id,notnull,unique"`
	Username      string                `bun:"username,notnull,type:varchar(32)"`
	CountryCode   string                `bun:"country_code,nullzero,type:varchar(2)"`
	Score         int                   `bun:"score,notnull,default:0"`
	CreatedAt     time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
