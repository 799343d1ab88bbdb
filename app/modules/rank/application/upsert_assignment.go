package rankservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	guilddb "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/repositories"
	playerdb "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/repositories"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	rankdb "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/repositories"
	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

// UpsertAssignment records a freshly computed score for one (guild, player)
// pair and moves the stored role assignment to the tier the score resolves
// to. Writes for the same pair are serialized; the guild config and ladder
// are always read from the source of truth, never a cache, because a stale
// ladder here would assign a role the guild no longer wants.
func (s *RankService) UpsertAssignment(ctx context.Context, guildID sharedtypes.GuildID, discordID sharedtypes.DiscordID, username, countryCode string, score int) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "UpsertAssignment", guildID, func(ctx context.Context) (results.OperationResult, error) {
		if guildID == "" || discordID == "" {
			err := errors.New("guild ID and discord ID are required")
			return results.OperationResult{Error: err}, err
		}
		if score < 0 {
			err := fmt.Errorf("score must be non-negative, got %d", score)
			return results.OperationResult{Error: err}, err
		}

		if _, err := s.guildRepo.GetConfig(ctx, s.db, guildID); err != nil {
			if errors.Is(err, guilddb.ErrNotFound) {
				return results.FailResult(&rankevents.SubmissionFailedPayload{
					GuildID:   guildID,
					DiscordID: discordID,
					Reason:    ErrGuildNotFound.Error(),
				}, ErrGuildNotFound), ErrGuildNotFound
			}
			return results.OperationResult{Error: err}, err
		}

		ladder, err := s.guildRepo.GetLadder(ctx, s.db, guildID)
		if err != nil {
			return results.OperationResult{Error: err}, err
		}
		newRole, err := rankdomain.ResolveRole(ladder, score)
		if err != nil {
			if errors.Is(err, rankdomain.ErrLadderMisconfigured) {
				return results.FailResult(&rankevents.SubmissionFailedPayload{
					GuildID:   guildID,
					DiscordID: discordID,
					Reason:    err.Error(),
				}, err), err
			}
			return results.OperationResult{Error: err}, err
		}

		unlock := s.locks.Lock(assignmentKey(guildID, discordID))
		defer unlock()

		var outcome rankevents.AssignmentResult
		err = s.runInTx(ctx, func(ctx context.Context, idb bun.IDB) error {
			player, err := s.playerRepo.GetByDiscordID(ctx, idb, discordID)
			if err != nil {
				if errors.Is(err, playerdb.ErrNotFound) {
					return ErrPlayerNotLinked
				}
				return err
			}

			current, err := s.repo.GetAssignment(ctx, idb, guildID, discordID)
			if err != nil && !errors.Is(err, rankdb.ErrNotFound) {
				return err
			}

			// The player row's score is global across guilds; a first
			// assignment in this guild starts from zero here, not from what
			// the player scored elsewhere.
			delta := score - player.Score
			if current == nil {
				delta = score
			}

			if err := s.playerRepo.UpdateScore(ctx, idb, discordID, score, username, countryCode); err != nil {
				return err
			}
			if err := s.repo.UpsertAssignment(ctx, idb, &rankdb.Assignment{
				GuildID:   guildID,
				DiscordID: discordID,
				RoleID:    newRole.RoleID,
			}); err != nil {
				return err
			}

			outcome = rankevents.AssignmentResult{
				GuildID:   guildID,
				DiscordID: discordID,
				Inserted:  current == nil,
				Score:     score,
				Delta:     delta,
				NewRole:   rankevents.RoleRef{RoleID: newRole.RoleID, Name: newRole.Name},
			}
			if current != nil {
				outcome.PreviousRole = roleRefFromLadder(ladder, current.RoleID)
				updatedAt := current.UpdatedAt
				outcome.PreviousUpdatedAt = &updatedAt
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrPlayerNotLinked) {
				return results.FailResult(&rankevents.SubmissionFailedPayload{
					GuildID:   guildID,
					DiscordID: discordID,
					Reason:    ErrPlayerNotLinked.Error(),
				}, err), err
			}
			return results.OperationResult{Error: err}, err
		}

		s.logger.InfoContext(ctx, "Assignment upserted",
			attr.ExtractCorrelationID(ctx),
			attr.String("guild_id", string(guildID)),
			attr.String("discord_id", string(discordID)),
			attr.Int("score", score),
			attr.Int("delta", outcome.Delta),
			attr.Bool("inserted", outcome.Inserted),
			attr.Bool("role_changed", outcome.RoleChanged()),
		)

		return results.OkResult(&outcome), nil
	})
}

// roleRefFromLadder names a stored role id from the current ladder. A role id
// no longer on the ladder keeps its id and loses its name.
func roleRefFromLadder(ladder []rankdomain.LadderRole, roleID sharedtypes.RoleID) *rankevents.RoleRef {
	for _, role := range ladder {
		if role.RoleID == roleID {
			return &rankevents.RoleRef{RoleID: role.RoleID, Name: role.Name}
		}
	}
	return &rankevents.RoleRef{RoleID: roleID}
}
