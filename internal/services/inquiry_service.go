package services

import (
	"fmt"
	"log"

	"homescout/internal/models"
	"homescout/internal/repositories"
)

// InquiryEventPublisher publishes inquiry lifecycle events to the message
// broker. A nil publisher disables publishing.
type InquiryEventPublisher interface {
	PublishInquiryCreated(event map[string]interface{}) error
}

// InquiryService handles business logic for property inquiries.
type InquiryService struct {
	inquiryRepo  repositories.InquiryRepository
	propertyRepo repositories.PropertyRepository
	publisher    InquiryEventPublisher
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(inquiryRepo repositories.InquiryRepository, propertyRepo repositories.PropertyRepository, publisher InquiryEventPublisher) *InquiryService {
	return &InquiryService{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
	}
}

// CreateInquiry validates the target property exists, stores the inquiry with
// status "new", and publishes an inquiry.created event. Publish failures are
// logged, not returned; the inquiry is already persisted.
func (s *InquiryService) CreateInquiry(inquiry *models.Inquiry) error {
	if _, err := s.propertyRepo.GetByID(inquiry.PropertyID); err != nil {
		return err
	}

	inquiry.Status = models.InquiryStatusNew
	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"inquiryID":   inquiry.ID,
			"propertyID":  inquiry.PropertyID,
			"email":       inquiry.Email,
			"inquiryType": inquiry.InquiryType,
		}
		if err := s.publisher.PublishInquiryCreated(event); err != nil {
			log.Printf("Warning: failed to publish inquiry created event for inquiry %s: %v", inquiry.ID, err)
		}
	} else {
		log.Println("Inquiry event publisher is not configured. Skipping message publication.")
	}

	return nil
}

// GetPropertyInquiries returns the inquiries for a property.
func (s *InquiryService) GetPropertyInquiries(propertyID string) ([]models.Inquiry, error) {
	return s.inquiryRepo.ListByProperty(propertyID)
}

// GetUserInquiries returns the inquiries submitted by a user.
func (s *InquiryService) GetUserInquiries(userID string) ([]models.Inquiry, error) {
	return s.inquiryRepo.ListByUser(userID)
}

// UpdateInquiryStatus sets an inquiry's status to one of the allowed values.
func (s *InquiryService) UpdateInquiryStatus(id, status string) (*models.Inquiry, error) {
	validStatuses := map[string]bool{
		models.InquiryStatusNew:       true,
		models.InquiryStatusContacted: true,
		models.InquiryStatusClosed:    true,
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid inquiry status: %s", status)
	}
	return s.inquiryRepo.UpdateStatus(id, status)
}
