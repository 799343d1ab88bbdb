package guilddb

import "errors"

// Sentinel errors for the repository layer. These represent
// infrastructure-level conditions callers may want to handle specially.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRecord indicates a write violated a uniqueness constraint.
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrFloorRoleImmutable indicates an attempt to remove the ladder's
	// zero-threshold floor role.
	ErrFloorRoleImmutable = errors.New("floor role cannot be removed")
)
