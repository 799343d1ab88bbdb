package rankdb

import "errors"

var (
	// ErrNotFound indicates no assignment exists for the (guild, player) pair.
	ErrNotFound = errors.New("assignment not found")

	// ErrDuplicateRecord indicates more than one live assignment row exists
	// for a (guild, player) pair. This means upstream data corruption, not a
	// recoverable user condition.
	ErrDuplicateRecord = errors.New("duplicate assignment record")
)
