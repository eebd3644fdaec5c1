package services

import (
	"homescout/internal/models"
	"homescout/internal/repositories"
)

// FavoriteService handles business logic for user favorites.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	propertyRepo repositories.PropertyRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, propertyRepo repositories.PropertyRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// AddFavorite saves a property to the user's favorites. The property must
// exist; adding the same property twice fails with ErrDuplicateFavorite.
func (s *FavoriteService) AddFavorite(userID, propertyID string) (*models.Favorite, error) {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return nil, err
	}
	favorite := &models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := s.favoriteRepo.Add(favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// RemoveFavorite removes a property from the user's favorites, reporting
// whether a row was removed.
func (s *FavoriteService) RemoveFavorite(userID, propertyID string) (bool, error) {
	return s.favoriteRepo.Remove(userID, propertyID)
}

// GetUserFavorites returns the user's favorited properties, most recently
// favorited first.
func (s *FavoriteService) GetUserFavorites(userID string) ([]models.Property, error) {
	return s.favoriteRepo.ListProperties(userID)
}

// IsFavorite reports whether the user has favorited the property.
func (s *FavoriteService) IsFavorite(userID, propertyID string) (bool, error) {
	return s.favoriteRepo.IsFavorite(userID, propertyID)
}
