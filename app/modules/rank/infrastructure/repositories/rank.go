package rankdb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// RankDBImpl implements Repository on bun.
type RankDBImpl struct{}

// NewRepository returns the bun-backed assignment repository.
func NewRepository() *RankDBImpl {
	return &RankDBImpl{}
}

// GetAssignment returns the single live assignment for the pair. More than
// one row violates the uniqueness invariant and surfaces as
// ErrDuplicateRecord so the caller can report corruption instead of silently
// picking a row.
func (r *RankDBImpl) GetAssignment(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID) (*Assignment, error) {
	var assignments []Assignment
	err := db.NewSelect().Model(&assignments).
		Where("guild_id = ? AND discord_id = ?", guildID, discordID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	switch len(assignments) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &assignments[0], nil
	default:
		return nil, fmt.Errorf("%w: %d rows for guild %s player %s",
			ErrDuplicateRecord, len(assignments), guildID, discordID)
	}
}

// UpsertAssignment inserts the assignment or, when the pair already has a
// row, updates that row's role in place. The conflict target is the unique
// (guild_id, discord_id) index.
func (r *RankDBImpl) UpsertAssignment(ctx context.Context, db bun.IDB, assignment *Assignment) error {
	assignment.UpdatedAt = time.Now().UTC()
	_, err := db.NewInsert().Model(assignment).
		On("CONFLICT (guild_id, discord_id) DO UPDATE").
		Set("role_id = EXCLUDED.role_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert assignment: %w", err)
	}
	return nil
}

func (r *RankDBImpl) ListGuildAssignments(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]Assignment, error) {
	var assignments []Assignment
	err := db.NewSelect().Model(&assignments).
		Where("guild_id = ?", guildID).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild assignments: %w", err)
	}
	return assignments, nil
}

var _ Repository = (*RankDBImpl)(nil)
