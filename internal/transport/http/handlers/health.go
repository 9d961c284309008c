package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/emtionre/satisfaction-service/internal/logger"
	"github.com/emtionre/satisfaction-service/internal/transport/http/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter is told about every db ping outcome. Optional.
type HealthReporter interface {
	SetDependencyHealth(dependency string, healthy bool)
}

type HealthHandler struct {
	db       Pinger
	cache    Pinger
	reporter HealthReporter
	timeout  time.Duration
}

func NewHealthHandler(db Pinger, reporter HealthReporter) *HealthHandler {
	return &HealthHandler{db: db, reporter: reporter, timeout: 2 * time.Second}
}

// WithCache makes DBPing also ping the cache and report it as "redis".
// The cache result never changes the response.
func (h *HealthHandler) WithCache(cache Pinger) *HealthHandler {
	h.cache = cache
	return h
}

// Health is liveness only; it never touches the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *HealthHandler) DBPing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	err := h.db.Ping(ctx)
	if h.reporter != nil {
		h.reporter.SetDependencyHealth("db", err == nil)
	}
	if h.cache != nil {
		cerr := h.cache.Ping(ctx)
		if cerr != nil {
			logger.Ctx(r.Context()).Warn().Err(cerr).Msg("redis ping failed")
		}
		if h.reporter != nil {
			h.reporter.SetDependencyHealth("redis", cerr == nil)
		}
	}
	if err != nil {
		logger.Ctx(r.Context()).Warn().Err(err).Msg("db ping failed")
		response.JSON(w, http.StatusInternalServerError, map[string]string{
			"db":    "fail",
			"error": err.Error(),
		})
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"db": "ok"})
}
