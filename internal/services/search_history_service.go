package services

import (
	"homescout/internal/models"
	"homescout/internal/repositories"
)

// DefaultSearchHistoryLimit bounds how many past searches are returned.
const DefaultSearchHistoryLimit = 10

// SearchHistoryService handles business logic for saved searches.
type SearchHistoryService struct {
	repo repositories.SearchHistoryRepository
}

// NewSearchHistoryService creates a new SearchHistoryService.
func NewSearchHistoryService(repo repositories.SearchHistoryRepository) *SearchHistoryService {
	return &SearchHistoryService{
		repo: repo,
	}
}

// AddSearch appends a search history entry for the user.
func (s *SearchHistoryService) AddSearch(entry *models.SearchHistory) error {
	return s.repo.Add(entry)
}

// GetRecentSearches returns the user's most recent searches.
func (s *SearchHistoryService) GetRecentSearches(userID string, limit int) ([]models.SearchHistory, error) {
	if limit < 1 {
		limit = DefaultSearchHistoryLimit
	}
	return s.repo.ListRecent(userID, limit)
}
