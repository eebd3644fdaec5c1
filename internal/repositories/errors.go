package repositories

import "errors"

// Sentinel errors shared by all repositories. Callers match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateFavorite = errors.New("property already in favorites")
)
