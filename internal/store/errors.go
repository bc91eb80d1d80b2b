package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookmarkNotFound is returned when a query or update targets a
	// bookmark id that does not exist in the local tree.
	ErrBookmarkNotFound = errors.New("bookmark was not found")
)
