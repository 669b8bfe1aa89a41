package services_test

import (
	"testing"

	"gamecritic/internal/models"
	"gamecritic/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	userRepo.On("GetByUsername", "ana").Return(nil, nil).Once()
	userRepo.On("GetByEmail", "ana@example.com").Return(nil, nil).Once()
	userRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		// Stored password must be a hash, never the plaintext.
		return u.Username == "ana" && u.Password != "secret123" &&
			u.ProfileIcon != "" && u.Following != nil && u.Followers != nil
	})).Return(nil).Once()

	user, err := service.Register("Ana", "ana", "ana@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	userRepo.AssertExpectations(t)
}

func TestAuthService_RegisterRejectsDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	userRepo.On("GetByUsername", "ana").Return(&models.User{ID: "u1", Username: "ana"}, nil).Once()

	user, err := service.Register("Ana", "ana", "ana@example.com", "secret123")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "already taken")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	userRepo.On("GetByUsername", "ana").Return(nil, nil).Once()
	userRepo.On("GetByEmail", "ana@example.com").Return(&models.User{ID: "u1"}, nil).Once()

	user, err := service.Register("Ana", "ana", "ana@example.com", "secret123")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "already registered")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByEmail", "ana@example.com").Return(&models.User{
		ID:       "u1",
		Username: "ana",
		Email:    "ana@example.com",
		Password: string(hash),
	}, nil).Once()

	token, err := service.Login("ana@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "ana", claims["username"])
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", "ana@example.com").Return(&models.User{
		ID:       "u1",
		Password: string(hash),
	}, nil).Once()

	token, err := service.Login("ana@example.com", "wrong-password")

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_LoginUnknownEmailDoesNotLeakExistence(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewAuthService(userRepo, "test_secret")

	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, nil).Once()

	_, err := service.Login("ghost@example.com", "whatever")

	assert.Error(t, err)
	// Same message as a wrong password.
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateTokenRejectsForeignSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	issuer := services.NewAuthService(userRepo, "issuer_secret")
	verifier := services.NewAuthService(userRepo, "other_secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", "ana@example.com").Return(&models.User{ID: "u1", Password: string(hash)}, nil).Once()

	token, err := issuer.Login("ana@example.com", "secret123")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
