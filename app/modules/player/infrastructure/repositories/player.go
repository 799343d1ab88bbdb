package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// PlayerDBImpl implements Repository on bun.
type PlayerDBImpl struct{}

// NewRepository returns the bun-backed player repository.
func NewRepository() *PlayerDBImpl {
	return &PlayerDBImpl{}
}

func (r *PlayerDBImpl) GetByDiscordID(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID) (*Player, error) {
	player := &Player{}
	err := db.NewSelect().Model(player).Where("discord_id = ?", discordID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player by discord id: %w", err)
	}
	return player, nil
}

func (r *PlayerDBImpl) GetByOsuID(ctx context.Context, db bun.IDB, osuID sharedtypes.OsuID) (*Player, error) {
	player := &Player{}
	err := db.NewSelect().Model(player).Where("osu_id = ?", osuID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player by osu id: %w", err)
	}
	return player, nil
}

func (r *PlayerDBImpl) Create(ctx context.Context, db bun.IDB, player *Player) error {
	if _, err := db.NewInsert().Model(player).Exec(ctx); err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// UpdateScore refreshes score, profile fields, and the last-update timestamp
// in one statement so a concurrent reader never observes a half-applied
// submission.
func (r *PlayerDBImpl) UpdateScore(ctx context.Context, db bun.IDB, discordID sharedtypes.DiscordID, score int, username, countryCode string) error {
	result, err := db.NewUpdate().Model((*Player)(nil)).
		Set("score = ?", score).
		Set("username = ?", username).
		Set("country_code = ?", countryCode).
		Set("updated_at = ?", time.Now().UTC()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player score: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*PlayerDBImpl)(nil)
