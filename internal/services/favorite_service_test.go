package services_test

import (
	"fmt"
	"testing"

	"homescout/internal/models"
	"homescout/internal/repositories"
	"homescout/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteService_AddFavorite(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)
	mockProperties := new(MockPropertyRepository)
	service := services.NewFavoriteService(mockFavorites, mockProperties)

	mockProperties.On("GetByID", "prop-1").Return(&models.Property{ID: "prop-1"}, nil).Once()
	mockFavorites.On("Add", mock.MatchedBy(func(f *models.Favorite) bool {
		return f.UserID == "user-1" && f.PropertyID == "prop-1"
	})).Return(nil).Once()

	favorite, err := service.AddFavorite("user-1", "prop-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", favorite.UserID)
	assert.Equal(t, "prop-1", favorite.PropertyID)
	mockFavorites.AssertExpectations(t)
	mockProperties.AssertExpectations(t)
}

func TestFavoriteService_AddFavoriteMissingProperty(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)
	mockProperties := new(MockPropertyRepository)
	service := services.NewFavoriteService(mockFavorites, mockProperties)

	mockProperties.On("GetByID", "missing").
		Return(nil, fmt.Errorf("property with ID missing: %w", repositories.ErrNotFound)).Once()

	favorite, err := service.AddFavorite("user-1", "missing")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, favorite)
	mockFavorites.AssertNotCalled(t, "Add", mock.Anything)
	mockProperties.AssertExpectations(t)
}

func TestFavoriteService_AddFavoriteDuplicate(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)
	mockProperties := new(MockPropertyRepository)
	service := services.NewFavoriteService(mockFavorites, mockProperties)

	mockProperties.On("GetByID", "prop-1").Return(&models.Property{ID: "prop-1"}, nil).Once()
	mockFavorites.On("Add", mock.Anything).
		Return(fmt.Errorf("favorite for property prop-1: %w", repositories.ErrDuplicateFavorite)).Once()

	_, err := service.AddFavorite("user-1", "prop-1")

	assert.ErrorIs(t, err, repositories.ErrDuplicateFavorite)
	mockFavorites.AssertExpectations(t)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)
	mockProperties := new(MockPropertyRepository)
	service := services.NewFavoriteService(mockFavorites, mockProperties)

	mockFavorites.On("Remove", "user-1", "prop-1").Return(true, nil).Once()
	removed, err := service.RemoveFavorite("user-1", "prop-1")
	assert.NoError(t, err)
	assert.True(t, removed)

	mockFavorites.On("Remove", "user-1", "prop-9").Return(false, nil).Once()
	removed, err = service.RemoveFavorite("user-1", "prop-9")
	assert.NoError(t, err)
	assert.False(t, removed)
	mockFavorites.AssertExpectations(t)
}

func TestFavoriteService_GetUserFavorites(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)
	mockProperties := new(MockPropertyRepository)
	service := services.NewFavoriteService(mockFavorites, mockProperties)

	expected := []models.Property{{ID: "prop-2"}, {ID: "prop-1"}}
	mockFavorites.On("ListProperties", "user-1").Return(expected, nil).Once()

	properties, err := service.GetUserFavorites("user-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, properties)
	mockFavorites.AssertExpectations(t)
}
