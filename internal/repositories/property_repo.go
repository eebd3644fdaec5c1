package repositories

import (
	"homescout/internal/models"
)

// PropertyRepository defines the interface for listing data access.
type PropertyRepository interface {
	// Search returns the page of properties matching the filter along with the
	// total number of matches, which ignores pagination.
	Search(search models.PropertySearch) ([]models.Property, int64, error)
	GetByID(id string) (*models.Property, error)
	Create(property *models.Property) error
	Update(id string, update models.PropertyUpdate) (*models.Property, error)
	// Delete removes a property by id. It reports whether a row was actually
	// removed; deleting a nonexistent id is not an error.
	Delete(id string) (bool, error)
	// IncrementViews adds one to the view counter in a single UPDATE so
	// concurrent increments never lose updates.
	IncrementViews(id string) error
	GetFeatured(limit int) ([]models.Property, error)
	CountAll() (int64, error)
	SumViews() (int64, error)
}
