package repositories

import (
	"errors"
	"fmt"
	"strings"

	"homescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortable columns. Anything else falls back to
// created_at, matching the search defaults.
var sortColumns = map[string]string{
	"price":     "price",
	"createdAt": "created_at",
	"views":     "views",
	"sqft":      "sqft",
}

// GORMPropertyRepository is a GORM implementation of PropertyRepository.
type GORMPropertyRepository struct {
	db *gorm.DB
}

// NewGORMPropertyRepository creates a new instance of GORMPropertyRepository.
func NewGORMPropertyRepository(db *gorm.DB) *GORMPropertyRepository {
	return &GORMPropertyRepository{
		db: db,
	}
}

// applyFilters adds one conjunctive predicate per present filter field. The
// free-text query is the only OR: it expands into case-insensitive contains
// matches on title, description and address before being ANDed with the rest.
func applyFilters(q *gorm.DB, search models.PropertySearch) *gorm.DB {
	if search.Query != "" {
		pattern := "%" + strings.ToLower(search.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern, pattern)
	}
	if search.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(search.City)+"%")
	}
	if search.State != "" {
		q = q.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(search.State)+"%")
	}
	if search.ZipCode != "" {
		q = q.Where("zip_code = ?", search.ZipCode)
	}
	if search.PropertyType != "" {
		q = q.Where("property_type = ?", search.PropertyType)
	}
	if search.Status != "" {
		q = q.Where("status = ?", search.Status)
	}
	if search.MinPrice != nil {
		q = q.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		q = q.Where("price <= ?", *search.MaxPrice)
	}
	if search.MinBedrooms != nil {
		q = q.Where("bedrooms >= ?", *search.MinBedrooms)
	}
	if search.MaxBedrooms != nil {
		q = q.Where("bedrooms <= ?", *search.MaxBedrooms)
	}
	if search.MinBathrooms != nil {
		q = q.Where("bathrooms >= ?", *search.MinBathrooms)
	}
	if search.MaxBathrooms != nil {
		q = q.Where("bathrooms <= ?", *search.MaxBathrooms)
	}
	if search.MinSqft != nil {
		q = q.Where("sqft >= ?", *search.MinSqft)
	}
	if search.MaxSqft != nil {
		q = q.Where("sqft <= ?", *search.MaxSqft)
	}
	if search.Featured != nil {
		q = q.Where("featured = ?", *search.Featured)
	}
	return q
}

// Search runs the count and the paginated select as two independent queries,
// not a shared snapshot, so the total and the page can diverge slightly when
// writes land between them.
func (r *GORMPropertyRepository) Search(search models.PropertySearch) ([]models.Property, int64, error) {
	search.Normalize()

	var total int64
	if err := applyFilters(r.db.Model(&models.Property{}), search).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	column, ok := sortColumns[search.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if search.SortOrder == "asc" {
		direction = "ASC"
	}

	properties := make([]models.Property, 0, search.Limit)
	err := applyFilters(r.db.Model(&models.Property{}), search).
		Order(column + " " + direction).
		Limit(search.Limit).
		Offset((search.Page - 1) * search.Limit).
		Find(&properties).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, total, nil
}

// GetByID retrieves a single property by its ID from the database.
func (r *GORMPropertyRepository) GetByID(id string) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get property by ID %s: %w", id, err)
	}
	return &property, nil
}

// Create inserts a new property with a fresh view counter.
func (r *GORMPropertyRepository) Create(property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	property.Views = 0
	if property.Status == "" {
		property.Status = models.StatusForSale
	}
	if err := r.db.Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// Update applies a partial field set to an existing property and refreshes the
// updated timestamp. Returns ErrNotFound if the id does not exist.
func (r *GORMPropertyRepository) Update(id string, update models.PropertyUpdate) (*models.Property, error) {
	property, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	update.Apply(property)
	if err := r.db.Save(property).Error; err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}
	return property, nil
}

// Delete removes a property by its ID, reporting whether a row was removed.
func (r *GORMPropertyRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete property %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// IncrementViews bumps the view counter with a single relative UPDATE. The
// updated timestamp is deliberately left alone; a view is not an edit.
func (r *GORMPropertyRepository) IncrementViews(id string) error {
	err := r.db.Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment views for property %s: %w", id, err)
	}
	return nil
}

// GetFeatured returns up to limit featured properties, newest first.
func (r *GORMPropertyRepository) GetFeatured(limit int) ([]models.Property, error) {
	properties := make([]models.Property, 0, limit)
	err := r.db.Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get featured properties: %w", err)
	}
	return properties, nil
}

// CountAll returns the total number of properties.
func (r *GORMPropertyRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}

// SumViews returns the sum of view counters across all properties.
func (r *GORMPropertyRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Property{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum property views: %w", err)
	}
	return total, nil
}
