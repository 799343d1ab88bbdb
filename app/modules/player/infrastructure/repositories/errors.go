package playerdb

import "errors"

var (
	// ErrNotFound indicates the requested player does not exist.
	ErrNotFound = errors.New("player not found")

	// ErrDuplicateRecord indicates a write violated a uniqueness constraint
	// (Discord account or osu! account already linked).
	ErrDuplicateRecord = errors.New("duplicate player record")
)
