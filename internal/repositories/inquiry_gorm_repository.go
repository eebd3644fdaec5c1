package repositories

import (
	"fmt"

	"homescout/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMInquiryRepository is a GORM implementation of InquiryRepository.
type GORMInquiryRepository struct {
	db *gorm.DB
}

// NewGORMInquiryRepository creates a new instance of GORMInquiryRepository.
func NewGORMInquiryRepository(db *gorm.DB) *GORMInquiryRepository {
	return &GORMInquiryRepository{
		db: db,
	}
}

// Create inserts a new inquiry.
func (r *GORMInquiryRepository) Create(inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	if inquiry.InquiryType == "" {
		inquiry.InquiryType = models.InquiryTypeGeneral
	}
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	if err := r.db.Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// ListByProperty returns the inquiries for a property, newest first.
func (r *GORMInquiryRepository) ListByProperty(propertyID string) ([]models.Inquiry, error) {
	inquiries := make([]models.Inquiry, 0)
	err := r.db.Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries for property %s: %w", propertyID, err)
	}
	return inquiries, nil
}

// ListByUser returns the inquiries submitted by a user, newest first.
func (r *GORMInquiryRepository) ListByUser(userID string) ([]models.Inquiry, error) {
	inquiries := make([]models.Inquiry, 0)
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries for user %s: %w", userID, err)
	}
	return inquiries, nil
}

// UpdateStatus sets the status of an inquiry and returns the updated row.
func (r *GORMInquiryRepository) UpdateStatus(id, status string) (*models.Inquiry, error) {
	res := r.db.Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update inquiry %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("inquiry with ID %s: %w", id, ErrNotFound)
	}
	var inquiry models.Inquiry
	if err := r.db.First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload inquiry %s: %w", id, err)
	}
	return &inquiry, nil
}

// CountAll returns the total number of inquiries.
func (r *GORMInquiryRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Inquiry{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return total, nil
}
