package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/emtionre/satisfaction-service/internal/config"
	"github.com/emtionre/satisfaction-service/internal/domain"
	"github.com/emtionre/satisfaction-service/internal/metrics"
	"github.com/emtionre/satisfaction-service/internal/transport/http/handlers"
	mw "github.com/emtionre/satisfaction-service/internal/transport/http/middleware"
	"github.com/emtionre/satisfaction-service/internal/transport/http/response"
)

func New(
	h *handlers.SatisfactionHandler,
	z *handlers.HealthHandler,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.AccessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.HeaderXRequestID},
		ExposedHeaders: []string{mw.HeaderXRequestID},
		MaxAge:         300,
	}))
	if m != nil {
		r.Use(m.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Err(w, r, domain.ErrNotFound("route not found"))
	})

	r.Get("/health", z.Health)
	r.Get("/db-ping", z.DBPing)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.RLEnabled {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}
		r.Get("/satisfaction-segments", h.Segments)
		r.Get("/minute-satisfaction", h.Minute)
		r.Get("/available-times", h.AvailableTimes)
		r.Get("/available-dates", h.AvailableDates)
	})

	return r
}
