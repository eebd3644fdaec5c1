package services

import (
	"homescout/internal/models"
	"homescout/internal/repositories"
)

// PropertyService handles business logic related to property listings.
type PropertyService struct {
	repo repositories.PropertyRepository
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{
		repo: repo,
	}
}

// SearchProperties runs a filtered, sorted, paginated listing query and
// returns the page plus the total match count.
func (s *PropertyService) SearchProperties(search models.PropertySearch) ([]models.Property, int64, error) {
	search.Normalize()
	return s.repo.Search(search)
}

// GetPropertyByID retrieves a single property by its ID.
func (s *PropertyService) GetPropertyByID(id string) (*models.Property, error) {
	return s.repo.GetByID(id)
}

// CreateProperty creates a new listing.
func (s *PropertyService) CreateProperty(property *models.Property) error {
	return s.repo.Create(property)
}

// UpdateProperty applies a partial update to a listing.
func (s *PropertyService) UpdateProperty(id string, update models.PropertyUpdate) (*models.Property, error) {
	return s.repo.Update(id, update)
}

// DeleteProperty removes a listing, reporting whether a row was removed.
func (s *PropertyService) DeleteProperty(id string) (bool, error) {
	return s.repo.Delete(id)
}

// RecordView increments a listing's view counter.
func (s *PropertyService) RecordView(id string) error {
	return s.repo.IncrementViews(id)
}

// GetFeaturedProperties returns up to limit featured listings, newest first.
func (s *PropertyService) GetFeaturedProperties(limit int) ([]models.Property, error) {
	if limit < 1 {
		limit = models.DefaultFeaturedLimit
	}
	return s.repo.GetFeatured(limit)
}
