package services_test

import (
	"fmt"
	"testing"

	"homescout/internal/models"
	"homescout/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByUsername", "newuser").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		// Password is hashed and self-registration never grants admin.
		return u.Password != "password123" && u.Role == models.RoleUser
	})).Return(nil).Once()

	user := &models.User{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
		Role:     models.RoleAdmin, // must be ignored
	}
	err := service.RegisterUser(user)

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserDuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByUsername", "taken").Return(&models.User{Username: "taken"}, nil).Once()

	err := service.RegisterUser(&models.User{Username: "taken", Email: "x@example.com", Password: "secret1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{
		ID:       "user-1",
		Username: "testuser",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	mockRepo.On("GetByUsername", "testuser").Return(stored, nil).Once()

	token, err := service.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "testuser").
		Return(&models.User{Username: "testuser", Password: string(hashed)}, nil).Once()

	_, err := service.LoginUser("testuser", "wrongpass")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByUsername", "ghost").Return(nil, fmt.Errorf("not found")).Once()

	_, err := service.LoginUser("ghost", "whatever")

	// The same error for unknown user and wrong password.
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	other := services.NewAuthService(mockRepo, "different_secret")
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "testuser").
		Return(&models.User{ID: "user-1", Username: "testuser", Password: string(hashed)}, nil).Once()
	token, err := other.LoginUser("testuser", "pw123456")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
