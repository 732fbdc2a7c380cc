// Package middleware provides the HTTP middleware chain for the WebNexa API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/auth"
	"github.com/webnexa/api/pkg/response"
)

type adminCtxKey struct{}

// AdminFromCtx returns the authenticated admin injected by Auth, or nil
// when the request did not pass through the guard.
func AdminFromCtx(ctx context.Context) *models.AdminAccount {
	admin, _ := ctx.Value(adminCtxKey{}).(*models.AdminAccount)
	return admin
}

// Auth guards admin-only routes. It accepts requests carrying a valid
// "Authorization: Bearer <token>" header whose token verifies and whose
// admin account still exists, and rejects everything else with the same
// 401 body so callers cannot distinguish a missing header from a revoked
// account.
func Auth(admins store.AdminStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthenticated(w)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				response.Unauthenticated(w)
				return
			}

			adminID, err := auth.VerifyToken(token)
			if err != nil {
				response.Unauthenticated(w)
				return
			}

			admin, err := admins.FindByID(r.Context(), adminID)
			if err != nil {
				response.Unauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminCtxKey{}, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
