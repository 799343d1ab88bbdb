package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rankdb "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating rank_assignments table...")
			if _, err := db.NewCreateTable().Model((*rankdb.Assignment)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*rankdb.Assignment)(nil)).
				Index("idx_rank_assignments_guild_player").
				Column("guild_id", "discord_id").
				Unique().
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping rank_assignments table...")
			_, err := db.NewDropTable().Model((*rankdb.Assignment)(nil)).IfExists().Cascade().Exec(ctx)
			return err
		},
	)
}
