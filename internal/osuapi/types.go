// Package osuapi provides the external data providers: the osu! API v2
// profile client and the two rank-count sources (osu!Stats and the
// alternative delta tracker).
package osuapi

import (
	"context"
	"errors"

	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

var (
	// ErrNotFound indicates the provider does not know the requested player.
	ErrNotFound = errors.New("player not found at provider")

	// ErrProviderUnavailable indicates a transport or upstream failure. The
	// whole command is safe to retry.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// AccountStatus is the osu! account state flag. Anything other than
// AccountStatusNormal is terminal for the flow that observed it.
type AccountStatus string

const (
	AccountStatusNormal  AccountStatus = "normal"
	AccountStatusBot     AccountStatus = "bot"
	AccountStatusDeleted AccountStatus = "deleted"
)

// Profile is the subset of the osu! user object the bot consumes.
type Profile struct {
	OsuID       sharedtypes.OsuID `json:"id"`
	Username    string            `json:"username"`
	CountryCode string            `json:"country_code"`
	Status      AccountStatus     `json:"status"`
}

// ProfileProvider resolves osu! profiles by name or id.
type ProfileProvider interface {
	GetProfileByName(ctx context.Context, username string) (*Profile, error)
	GetProfileByID(ctx context.Context, osuID sharedtypes.OsuID) (*Profile, error)
}

// RankCountProvider reports how many leaderboard entries a player holds at or
// above a rank threshold.
type RankCountProvider interface {
	CountAtRank(ctx context.Context, username string, threshold int) (int, error)
}
