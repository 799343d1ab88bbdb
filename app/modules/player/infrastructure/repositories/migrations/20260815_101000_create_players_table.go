package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating players table...")
			if _, err := db.NewCreateTable().Model((*playerdb.Player)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*playerdb.Player)(nil)).
				Index("idx_players_osu_id").
				Column("osu_id").
				Unique().
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping players table...")
			_, err := db.NewDropTable().Model((*playerdb.Player)(nil)).IfExists().Cascade().Exec(ctx)
			return err
		},
	)
}
