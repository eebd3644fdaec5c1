package services

import (
	"homescout/internal/models"
	"homescout/internal/repositories"
)

// AnalyticsService aggregates dashboard counters. The four aggregates are
// independent queries with no cross-correlation.
type AnalyticsService struct {
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	inquiryRepo  repositories.InquiryRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository, inquiryRepo repositories.InquiryRepository) *AnalyticsService {
	return &AnalyticsService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		inquiryRepo:  inquiryRepo,
	}
}

// GetAnalytics returns total properties, users, views and inquiries.
func (s *AnalyticsService) GetAnalytics() (*models.Analytics, error) {
	totalProperties, err := s.propertyRepo.CountAll()
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	totalViews, err := s.propertyRepo.SumViews()
	if err != nil {
		return nil, err
	}
	totalInquiries, err := s.inquiryRepo.CountAll()
	if err != nil {
		return nil, err
	}
	return &models.Analytics{
		TotalProperties: totalProperties,
		TotalUsers:      totalUsers,
		TotalViews:      totalViews,
		TotalInquiries:  totalInquiries,
	}, nil
}
