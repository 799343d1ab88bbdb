package guildservice

import (
	"context"
	"errors"
	"fmt"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// GetLadder returns the guild's role ladder, floor first.
func (s *GuildService) GetLadder(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "GetLadder", guildID, func(ctx context.Context) (results.OperationResult, error) {
		ladder, err := s.repo.GetLadder(ctx, s.db, guildID)
		if err != nil {
			return results.FailResult(&guildevents.LadderUpdateFailedPayload{
				GuildID: guildID,
				Reason:  err.Error(),
			}, err), err
		}
		return results.OkResult(&guildevents.LadderRetrievedPayload{
			GuildID: guildID,
			Ladder:  ladder,
		}), nil
	})
}

// AddLadderRole adds a tier to the ladder. A duplicate threshold is a
// configuration defect surfaced to the admin, not resolved by position.
func (s *GuildService) AddLadderRole(ctx context.Context, guildID sharedtypes.GuildID, role rankdomain.LadderRole) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "AddLadderRole", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if role.Name == "" {
			err := errors.New("ladder role needs a name")
			return results.FailResult(&guildevents.LadderUpdateFailedPayload{
				GuildID: guildID,
				Reason:  err.Error(),
			}, err), err
		}
		if role.MinPoints <= 0 {
			err := fmt.Errorf("ladder threshold must be positive, got %d", role.MinPoints)
			return results.FailResult(&guildevents.LadderUpdateFailedPayload{
				GuildID: guildID,
				Reason:  err.Error(),
			}, err), err
		}

		if err := s.repo.AddLadderRole(ctx, s.db, guildID, role); err != nil {
			reason := err.Error()
			if errors.Is(err, guilddb.ErrDuplicateRecord) {
				reason = fmt.Sprintf("a ladder role with threshold %d already exists", role.MinPoints)
			}
			return results.FailResult(&guildevents.LadderUpdateFailedPayload{
				GuildID: guildID,
				Reason:  reason,
			}, err), err
		}

		return results.OkResult(&guildevents.LadderRoleAddedPayload{
			GuildID: guildID,
			Role:    role,
		}), nil
	})
}

// RemoveLadderRole removes a tier. The floor role is immutable so the
// resolver invariant can never be broken by an admin command.
func (s *GuildService) RemoveLadderRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "RemoveLadderRole", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.RemoveLadderRole(ctx, s.db, guildID, roleID); err != nil {
			reason := err.Error()
			switch {
			case errors.Is(err, guilddb.ErrFloorRoleImmutable):
				reason = "the floor role cannot be removed"
			case errors.Is(err, guilddb.ErrNotFound):
				reason = "no such ladder role"
			}
			return results.FailResult(&guildevents.LadderUpdateFailedPayload{
				GuildID: guildID,
				Reason:  reason,
			}, err), err
		}

		return results.OkResult(&guildevents.LadderRoleRemovedPayload{
			GuildID: guildID,
			RoleID:  roleID,
		}), nil
	})
}
