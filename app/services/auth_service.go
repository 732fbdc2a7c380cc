package services

import (
	"context"
	"errors"
	"time"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/apperr"
	"github.com/webnexa/api/pkg/auth"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/metrics"
)

// AuthService manages the single-admin account lifecycle.
type AuthService struct {
	admins store.AdminStore
}

func NewAuthService(admins store.AdminStore) *AuthService {
	return &AuthService{admins: admins}
}

// Register creates an admin account. In "bootstrap" mode the endpoint only
// works while no admin exists yet; afterwards it behaves exactly like an
// unauthenticated request so the endpoint reveals nothing.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	if config.RegistrationMode() == "bootstrap" {
		n, err := s.admins.Count(ctx)
		if err != nil {
			return nil, apperr.Server(err)
		}
		if n > 0 {
			return nil, apperr.Unauthenticated()
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Server(err)
	}

	admin := &models.AdminAccount{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Insert(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return nil, apperr.Conflict("Username already exists")
		}
		return nil, apperr.Server(err)
	}

	logger.WithCtx(ctx).Info("admin registered", "username", username)
	return admin, nil
}

// Login verifies credentials and issues a signed token. An unknown username
// and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.AdminAccount, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.Logins.WithLabelValues("failure").Inc()
			return "", nil, apperr.InvalidCredentials()
		}
		return "", nil, apperr.Server(err)
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		metrics.Logins.WithLabelValues("failure").Inc()
		return "", nil, apperr.InvalidCredentials()
	}

	token, err := auth.SignToken(admin.ID.Hex())
	if err != nil {
		return "", nil, apperr.Server(err)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return token, admin, nil
}
