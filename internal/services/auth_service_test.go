package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

func newAuthService() AuthService {
	return NewAuthService(repositories.NewUserRepository(), repositories.NewRefreshTokenRepository())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)

	login, err := svc.Login(db, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestAuthService_Register_RejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(db, &dto.RegisterRequest{Name: "Other", Email: "alice@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_RejectsWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_Login_RejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "alice@example.com", Password: "not-the-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	resp, err := svc.Register(db, &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(db, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The old token was consumed by the rotation.
	_, err = svc.Refresh(db, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_Logout_InvalidatesRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := newAuthService()

	resp, err := svc.Register(db, &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(db, resp.RefreshToken))

	_, err = svc.Refresh(db, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
