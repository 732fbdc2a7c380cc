// Package routes declares the HTTP surface of the API.
package routes

import (
	"fmt"
	"time"

	"github.com/webnexa/api/app/controllers"
	"github.com/webnexa/api/app/services"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/gql"
	"github.com/webnexa/api/pkg/middleware"
	"github.com/webnexa/api/pkg/notify"
	"github.com/webnexa/api/pkg/router"
)

// RegisterAPI mounts all /api routes.
//
// Public:    contact submission, client showcase (REST + GraphQL), login,
//            registration.
// Protected: inquiry inbox and triage, client management, logo upload.
func RegisterAPI(r *router.Router, st store.Store, notifier notify.Sink) error {
	contact := controllers.NewContactController(
		services.NewInquiryService(st.Inquiries(), notifier))
	portfolio := controllers.NewPortfolioController(
		services.NewPortfolioService(st.Portfolio()))
	auth := controllers.NewAuthController(
		services.NewAuthService(st.Admins()))

	schema, err := gql.NewSchema(st.Portfolio())
	if err != nil {
		return fmt.Errorf("routes: build graphql schema: %w", err)
	}

	api := r.Group("/api")

	api.Post("/contact", "contact.submit", contact.Submit,
		middleware.RateLimit(30, time.Minute))
	api.Get("/clients", "clients.list", portfolio.List)
	api.Post("/graphql", "clients.graphql", gql.Handler(schema))

	api.Post("/admin/register", "admin.register", auth.Register)
	api.Post("/admin/login", "admin.login", auth.Login)

	protected := api.Group("", middleware.Auth(st.Admins()))
	protected.Get("/contacts", "contact.list", contact.List)
	protected.Put("/contact/{id}", "contact.update", contact.UpdateStatus)
	protected.Delete("/contact/{id}", "contact.delete", contact.Delete)
	protected.Post("/clients", "clients.create", portfolio.Create)
	protected.Post("/clients/logo", "clients.logo", portfolio.UploadLogo)

	return nil
}
