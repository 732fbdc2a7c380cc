package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/app/services"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/apperr"
	"github.com/webnexa/api/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	config.Set("REGISTRATION_MODE", "open")
	svc := services.NewAuthService(store.NewMemory().Admins())

	admin, err := svc.Register(context.Background(), "admin", "a strong password")
	require.NoError(t, err)
	assert.False(t, admin.ID.IsZero())
	assert.NotEqual(t, "a strong password", admin.PasswordHash)

	token, loggedIn, err := svc.Login(context.Background(), "admin", "a strong password")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, admin.ID, loggedIn.ID)

	// The token must resolve back to this admin's id.
	adminID, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), adminID)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	config.Set("REGISTRATION_MODE", "open")
	admins := store.NewMemory().Admins()
	svc := services.NewAuthService(admins)

	_, err := svc.Register(context.Background(), "admin", "a strong password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "admin", "another password")
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeConflict, appErr.Code)

	// The first account is untouched.
	n, err := admins.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, _, err = svc.Login(context.Background(), "admin", "a strong password")
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	config.Set("REGISTRATION_MODE", "open")
	svc := services.NewAuthService(store.NewMemory().Admins())

	_, err := svc.Register(context.Background(), "admin", "a strong password")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "admin", "wrong")
	_, _, unknownUser := svc.Login(context.Background(), "ghost", "a strong password")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, apperr.ClientMessage(wrongPassword), apperr.ClientMessage(unknownUser))
	assert.Equal(t, apperr.HTTPStatus(wrongPassword), apperr.HTTPStatus(unknownUser))
}

func TestBootstrapModeAllowsOnlyFirstAdmin(t *testing.T) {
	config.Set("REGISTRATION_MODE", "bootstrap")
	defer config.Set("REGISTRATION_MODE", "open")

	svc := services.NewAuthService(store.NewMemory().Admins())

	_, err := svc.Register(context.Background(), "admin", "a strong password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "second", "another password")
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeUnauthenticated, appErr.Code)
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	config.Set("REGISTRATION_MODE", "open")
	svc := services.NewAuthService(store.NewMemory().Admins())

	admin, err := svc.Register(context.Background(), "admin", "a strong password")
	require.NoError(t, err)

	raw, err := json.Marshal(admin)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "passwordHash")
	assert.NotContains(t, string(raw), admin.PasswordHash)
}
