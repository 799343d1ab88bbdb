package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// GuildDBImpl implements Repository on bun.
type GuildDBImpl struct{}

// NewRepository returns the bun-backed guild repository.
func NewRepository() *GuildDBImpl {
	return &GuildDBImpl{}
}

func (r *GuildDBImpl) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	var config GuildConfig
	err := db.NewSelect().Model(&config).Where("guild_id = ?", guildID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	return toSharedConfig(&config), nil
}

// CreateConfig inserts the guild config together with the sentinel floor role
// so the ladder resolver invariant holds from the moment the guild exists.
func (r *GuildDBImpl) CreateConfig(ctx context.Context, db bun.IDB, config *guildtypes.GuildConfig) error {
	model := toDBConfig(config)
	if !model.Regime.Valid() {
		model.Regime = rankdomain.RegimeStandard
	}
	if _, err := db.NewInsert().Model(model).Exec(ctx); err != nil {
		if isIntegrityViolation(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create guild config: %w", err)
	}

	floor := &LadderRole{
		GuildID:   config.GuildID,
		Name:      "No Role",
		MinPoints: 0,
	}
	if _, err := db.NewInsert().Model(floor).Exec(ctx); err != nil {
		if isIntegrityViolation(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create floor ladder role: %w", err)
	}
	return nil
}

func (r *GuildDBImpl) UpdateConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, updates *UpdateFields) error {
	q := db.NewUpdate().Model((*GuildConfig)(nil)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("guild_id = ?", guildID)

	if updates.CountryCode != nil {
		q = q.Set("country_code = ?", *updates.CountryCode)
	}
	if updates.CommandsChannelID != nil {
		q = q.Set("commands_channel_id = ?", *updates.CommandsChannelID)
	}
	if updates.VerifyChannelID != nil {
		q = q.Set("verify_channel_id = ?", *updates.VerifyChannelID)
	}
	if updates.LeaderboardChannelID != nil {
		q = q.Set("leaderboard_channel_id = ?", *updates.LeaderboardChannelID)
	}
	if updates.VerifiedRoleID != nil {
		q = q.Set("verified_role_id = ?", *updates.VerifiedRoleID)
	}
	if updates.Regime != nil {
		if !updates.Regime.Valid() {
			return fmt.Errorf("unknown scoring regime %q", *updates.Regime)
		}
		q = q.Set("regime = ?", *updates.Regime)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update guild config: %w", err)
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

func (r *GuildDBImpl) GetLadder(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]rankdomain.LadderRole, error) {
	var roles []LadderRole
	err := db.NewSelect().Model(&roles).
		Where("guild_id = ?", guildID).
		Order("min_points ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ladder roles: %w", err)
	}
	return toDomainLadder(roles), nil
}

// AddLadderRole inserts a ladder tier. The (guild_id, min_points) unique
// index rejects duplicate thresholds at the storage layer.
func (r *GuildDBImpl) AddLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, role rankdomain.LadderRole) error {
	if role.MinPoints < 0 {
		return fmt.Errorf("ladder threshold must be non-negative, got %d", role.MinPoints)
	}
	model := &LadderRole{
		GuildID:   guildID,
		RoleID:    role.RoleID,
		Name:      role.Name,
		MinPoints: role.MinPoints,
	}
	if _, err := db.NewInsert().Model(model).Exec(ctx); err != nil {
		if isIntegrityViolation(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to add ladder role: %w", err)
	}
	return nil
}

func (r *GuildDBImpl) RemoveLadderRole(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	if roleID == "" {
		return ErrFloorRoleImmutable
	}
	result, err := db.NewDelete().Model((*LadderRole)(nil)).
		Where("guild_id = ? AND role_id = ?", guildID, roleID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove ladder role: %w", err)
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

func isIntegrityViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

var _ Repository = (*GuildDBImpl)(nil)
