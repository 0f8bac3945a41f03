package catalog

import "errors"

// Catalog level errors.
// Failed operations never mutate the catalog, so callers may retry freely.
var (
	// ErrCapacityExceeded is returned by Create when every slot is taken, tombstones included.
	ErrCapacityExceeded = errors.New("maximum file limit reached")

	// ErrInsufficientSpace is returned when the requested size exceeds the free space.
	ErrInsufficientSpace = errors.New("insufficient space")

	// ErrNotFound is returned by Delete and Recover when no entry in the required state matches.
	ErrNotFound = errors.New("file not found")

	// ErrDuplicatePath is only returned when the catalog was built WithUniquePaths.
	ErrDuplicatePath = errors.New("path already in use")
)
