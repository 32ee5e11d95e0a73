package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

const maxBodyBytes = 1 << 20

// RouterConfig carries the dependencies of the router that are not handlers.
type RouterConfig struct {
	CORSOrigins []string
	// Database and Redis may be nil when the service is not configured.
	Database Pinger
	Redis    Pinger
	Log      *slog.Logger
}

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally: 60 requests per minute per IP.
func NewRouter(handlers *Handlers, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(cfg.Log))
	r.Use(middleware.Recoverer)
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(cfg.Database, cfg.Redis, cfg.Log))
		r.Post("/plan", handlers.CreatePlan)
		r.Get("/styles", handlers.ListStyles)
		r.Get("/destinations", handlers.ListDestinations)
	})

	// Form endpoint kept for the single-page client.
	r.Post("/plan", handlers.CreatePlan)

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
