package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/auth"
	"github.com/webnexa/api/pkg/middleware"
)

func request(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthAllowsValidToken(t *testing.T) {
	admins := store.NewMemory().Admins()
	acc := &models.AdminAccount{Username: "admin", PasswordHash: "x"}
	require.NoError(t, admins.Insert(context.Background(), acc))

	token, err := auth.SignToken(acc.ID.Hex())
	require.NoError(t, err)

	var seen *models.AdminAccount
	handler := middleware.Auth(admins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.AdminFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := request(handler, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, acc.ID, seen.ID)
}

func TestAuthFailuresAreUniform(t *testing.T) {
	admins := store.NewMemory().Admins()
	acc := &models.AdminAccount{Username: "admin", PasswordHash: "x"}
	require.NoError(t, admins.Insert(context.Background(), acc))

	handler := middleware.Auth(admins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Token for an admin that no longer exists.
	orphanToken, err := auth.SignToken("66f0c2a9e4b0a1b2c3d4e5f6")
	require.NoError(t, err)

	// Structurally valid but expired token.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		AdminID: acc.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte(config.JWTSecret()))
	require.NoError(t, err)

	cases := map[string]string{
		"no header":     "",
		"not bearer":    "Basic dXNlcjpwYXNz",
		"empty bearer":  "Bearer ",
		"garbage token": "Bearer not.a.token",
		"expired token": "Bearer " + expired,
		"deleted admin": "Bearer " + orphanToken,
	}

	for name, header := range cases {
		rec := request(handler, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.JSONEq(t, `{"success":false,"message":"Please authenticate"}`, rec.Body.String(), name)
	}
}
