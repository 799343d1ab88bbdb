// Package bundb owns the Postgres connection and hands out the module
// repositories bound to it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdb "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/config"
)

// DBService bundles the repositories over one connection pool.
type DBService struct {
	GuildDB  guilddb.Repository
	PlayerDB playerdb.Repository
	RankDB   rankdb.Repository

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and initializes the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*guilddb.GuildConfig)(nil),
		(*guilddb.LadderRole)(nil),
		(*playerdb.Player)(nil),
		(*rankdb.Assignment)(nil),
	)

	return &DBService{
		GuildDB:  &guilddb.GuildDBImpl{},
		PlayerDB: &playerdb.PlayerDBImpl{},
		RankDB:   &rankdb.RankDBImpl{},
		db:       db,
	}, nil
}

// Close releases the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}
