package rankdomain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// ErrLadderMisconfigured marks a guild role ladder that cannot resolve:
// empty, missing its zero-threshold floor, or carrying duplicate thresholds.
// It is a server-admin problem, never patched silently.
var ErrLadderMisconfigured = errors.New("role ladder misconfigured")

// LadderRole is one tier of a guild's role ladder. The floor tier has
// MinPoints 0 and an empty RoleID.
type LadderRole struct {
	RoleID    sharedtypes.RoleID
	Name      string
	MinPoints int
}

// ResolveRole returns the single ladder role whose threshold is the highest
// not exceeding score. Duplicate thresholds are ambiguous and rejected rather
// than resolved by position.
func ResolveRole(ladder []LadderRole, score int) (LadderRole, error) {
	if score < 0 {
		return LadderRole{}, fmt.Errorf("score must be non-negative, got %d", score)
	}
	if len(ladder) == 0 {
		return LadderRole{}, fmt.Errorf("%w: guild has no ladder roles", ErrLadderMisconfigured)
	}

	sorted := make([]LadderRole, len(ladder))
	copy(sorted, ladder)
	slices.SortFunc(sorted, func(a, b LadderRole) int {
		return cmp.Compare(a.MinPoints, b.MinPoints)
	})

	if sorted[0].MinPoints != 0 {
		return LadderRole{}, fmt.Errorf("%w: no zero-threshold floor role", ErrLadderMisconfigured)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinPoints == sorted[i-1].MinPoints {
			return LadderRole{}, fmt.Errorf("%w: roles %q and %q share threshold %d",
				ErrLadderMisconfigured, sorted[i-1].Name, sorted[i].Name, sorted[i].MinPoints)
		}
	}

	// The floor role guarantees at least one match.
	resolved := sorted[0]
	for _, role := range sorted[1:] {
		if role.MinPoints > score {
			break
		}
		resolved = role
	}
	return resolved, nil
}

// ValidateLadder checks the resolver invariants without resolving. Admin
// write paths call this before persisting ladder changes.
func ValidateLadder(ladder []LadderRole) error {
	_, err := ResolveRole(ladder, 0)
	return err
}
