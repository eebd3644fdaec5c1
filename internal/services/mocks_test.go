package services_test

import (
	"homescout/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of repositories.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Search(search models.PropertySearch) ([]models.Property, int64, error) {
	args := m.Called(search)
	return args.Get(0).([]models.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) GetByID(id string) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(property *models.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(id string, update models.PropertyUpdate) (*models.Property, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetFeatured(limit int) ([]models.Property, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SumViews() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of repositories.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(favorite *models.Favorite) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(userID, propertyID string) (bool, error) {
	args := m.Called(userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListProperties(userID string) ([]models.Property, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockFavoriteRepository) IsFavorite(userID, propertyID string) (bool, error) {
	args := m.Called(userID, propertyID)
	return args.Bool(0), args.Error(1)
}

// MockInquiryRepository is a mock implementation of repositories.InquiryRepository.
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(inquiry *models.Inquiry) error {
	args := m.Called(inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) ListByProperty(propertyID string) ([]models.Inquiry, error) {
	args := m.Called(propertyID)
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) ListByUser(userID string) ([]models.Inquiry, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) UpdateStatus(id, status string) (*models.Inquiry, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockInquiryPublisher is a mock implementation of services.InquiryEventPublisher.
type MockInquiryPublisher struct {
	mock.Mock
}

func (m *MockInquiryPublisher) PublishInquiryCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}
