package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating guild_configs table...")
			if _, err := db.NewCreateTable().Model((*guilddb.GuildConfig)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("Creating guild_ladder_roles table...")
			if _, err := db.NewCreateTable().Model((*guilddb.LadderRole)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*guilddb.LadderRole)(nil)).
				Index("idx_guild_ladder_roles_guild_threshold").
				Column("guild_id", "min_points").
				Unique().
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping guild tables...")
			if _, err := db.NewDropTable().Model((*guilddb.LadderRole)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewDropTable().Model((*guilddb.GuildConfig)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
