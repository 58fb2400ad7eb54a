package services

import (
	"net/http"
	"testing"

	"giglink_backend/internal/config"
	"giglink_backend/internal/email"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopEmailProvider struct{}

func (noopEmailProvider) Send(e *email.Email) error                { return nil }
func (noopEmailProvider) SendWelcome(to, displayName string) error { return nil }
func (noopEmailProvider) Close() error                             { return nil }

func newAuthFixture(t *testing.T) (*AuthService, *mockUserRepo) {
	t.Helper()

	// Token signing reads the global config; steer it onto the env path.
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("JWT_SECRET", "test-secret")
	config.AppConfig = nil
	config.LoadConfig()

	userRepo := newMockUserRepo()
	return NewAuthService(userRepo, newMockProfileRepo(), noopEmailProvider{}), userRepo
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:       "worker@test.dev",
		Password:    "secret-pass",
		Role:        models.UserRoleWorker,
		DisplayName: "Test Worker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleWorker, resp.User.Role)
	assert.Equal(t, models.UserStatusActive, resp.User.Status)
	require.NotNil(t, resp.User.Profile)
	assert.Equal(t, "Test Worker", resp.User.Profile.DisplayName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	req := &dto.RegisterRequest{
		Email:    "worker@test.dev",
		Password: "secret-pass",
		Role:     models.UserRoleWorker,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))
}

func TestLogin(t *testing.T) {
	svc, userRepo := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "worker@test.dev",
		Password: "secret-pass",
		Role:     models.UserRoleWorker,
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "worker@test.dev", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "worker@test.dev", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.dev", Password: "secret-pass"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	// Suspended accounts cannot log in.
	user, err := userRepo.FindByEmail("worker@test.dev")
	require.NoError(t, err)
	require.NoError(t, userRepo.UpdateStatus(user.ID, models.UserStatusSuspended))

	_, err = svc.Login(&dto.LoginRequest{Email: "worker@test.dev", Password: "secret-pass"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}
