package repositories

import (
	"homescout/internal/models"
)

// InquiryRepository defines the interface for inquiry data access.
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	ListByProperty(propertyID string) ([]models.Inquiry, error)
	ListByUser(userID string) ([]models.Inquiry, error)
	UpdateStatus(id, status string) (*models.Inquiry, error)
	CountAll() (int64, error)
}
