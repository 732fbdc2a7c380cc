// Package kernel builds the HTTP handler: global middleware, operational
// endpoints, API routes, and the SPA fallback.
package kernel

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/webnexa/api/app/routes"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/metrics"
	"github.com/webnexa/api/pkg/middleware"
	"github.com/webnexa/api/pkg/notify"
	"github.com/webnexa/api/pkg/reqid"
	"github.com/webnexa/api/pkg/response"
	"github.com/webnexa/api/pkg/router"
)

// BuildRouter constructs the router with the full middleware stack.
//
// Stack order (outermost first):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func BuildRouter(st store.Store, notifier notify.Sink) (*router.Router, error) {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Operational endpoints — no auth.
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	if err := routes.RegisterAPI(r, st, notifier); err != nil {
		return nil, err
	}

	// Everything that is not an API route falls through to the SPA.
	r.NotFound(spaFallback(config.PublicDir()))

	return r, nil
}

// spaFallback serves static frontend files from dir, falling back to
// index.html so client-side routing works on deep links. Unknown /api
// paths still get a JSON 404.
func spaFallback(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			response.NotFound(w)
			return
		}

		clean := filepath.Clean(r.URL.Path)
		if strings.Contains(clean, "..") {
			response.NotFound(w)
			return
		}

		full := filepath.Join(dir, clean)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			http.ServeFile(w, r, full)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			response.NotFound(w)
			return
		}
		http.ServeFile(w, r, index)
	}
}
