package repositories

import (
	"fmt"

	"homescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSearchHistoryRepository is a GORM implementation of SearchHistoryRepository.
type GORMSearchHistoryRepository struct {
	db *gorm.DB
}

// NewGORMSearchHistoryRepository creates a new instance of GORMSearchHistoryRepository.
func NewGORMSearchHistoryRepository(db *gorm.DB) *GORMSearchHistoryRepository {
	return &GORMSearchHistoryRepository{
		db: db,
	}
}

// Add appends a search history entry.
func (r *GORMSearchHistoryRepository) Add(entry *models.SearchHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to add search history: %w", err)
	}
	return nil
}

// ListRecent returns up to limit of the user's past searches, newest first.
func (r *GORMSearchHistoryRepository) ListRecent(userID string, limit int) ([]models.SearchHistory, error) {
	entries := make([]models.SearchHistory, 0, limit)
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list search history for user %s: %w", userID, err)
	}
	return entries, nil
}
