package rankservice

import "errors"

var (
	// ErrGuildNotFound means no guild configuration row exists; the guild has
	// never run setup.
	ErrGuildNotFound = errors.New("guild not configured")

	// ErrPlayerNotLinked means the Discord account has no osu! link yet.
	ErrPlayerNotLinked = errors.New("player not linked")
)
