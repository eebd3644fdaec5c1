package repositories

import (
	"fmt"
	"strings"

	"homescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Add inserts a favorite row. The unique index on (user_id, property_id)
// rejects a second row for the same pair; that surfaces as
// ErrDuplicateFavorite.
func (r *GORMFavoriteRepository) Add(favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if err := r.db.Create(favorite).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("favorite for property %s: %w", favorite.PropertyID, ErrDuplicateFavorite)
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// isUniqueViolation detects unique-constraint failures across the Postgres
// and SQLite drivers.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}

// Remove deletes a favorite by its compound key.
func (r *GORMFavoriteRepository) Remove(userID, propertyID string) (bool, error) {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND property_id = ?", userID, propertyID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListProperties joins favorites to properties, ordered by when the user
// favorited them.
func (r *GORMFavoriteRepository) ListProperties(userID string) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	err := r.db.Model(&models.Property{}).
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	return properties, nil
}

// IsFavorite reports whether the user has favorited the property.
func (r *GORMFavoriteRepository) IsFavorite(userID, propertyID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}
