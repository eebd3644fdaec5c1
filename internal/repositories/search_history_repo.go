package repositories

import (
	"homescout/internal/models"
)

// SearchHistoryRepository defines the interface for search history data access.
type SearchHistoryRepository interface {
	Add(entry *models.SearchHistory) error
	ListRecent(userID string, limit int) ([]models.SearchHistory, error)
}
