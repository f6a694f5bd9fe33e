package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bookhive/bookhive-backend/internal/auth"
	"github.com/bookhive/bookhive-backend/internal/transport/middleware"
)

// NewRouter mounts the health and admin handlers behind the shared
// middleware stack. Recovery sits innermost so its panic log carries the
// request id and identity set by the outer layers.
func NewRouter(health *HealthHandler, admin *AdminHandler, verifier *auth.Verifier, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		chimw.RealIP,
		middleware.Identity(verifier),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Get("/health/schema", health.Schema)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/reports", admin.Reports)
		r.Get("/requests", admin.Requests)
		r.Post("/reconcile", admin.Reconcile)
	})

	return r
}
