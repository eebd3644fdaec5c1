package repositories

import (
	"homescout/internal/models"
)

// FavoriteRepository defines the interface for favorites data access.
type FavoriteRepository interface {
	Add(favorite *models.Favorite) error
	// Remove deletes the (user, property) favorite, reporting whether a row
	// was actually removed.
	Remove(userID, propertyID string) (bool, error)
	// ListProperties returns the user's favorited properties, most recently
	// favorited first.
	ListProperties(userID string) ([]models.Property, error)
	IsFavorite(userID, propertyID string) (bool, error)
}
