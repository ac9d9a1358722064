package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/trendplan-backend/internal/transport/middleware"
)

// Handlers groups every endpoint handler mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Calendar    *CalendarHandler
	Preferences *PreferencesHandler
	Alerts      *AlertHandler
	Trends      *TrendHandler
}

// NewRouter mounts the API under /api/v1 next to the health and metrics
// endpoints. apiMW wraps the whole mux; Metrics sits innermost so it can
// read the matched route pattern.
func NewRouter(h Handlers, apiMW ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/calendar/generate", h.Calendar.Generate)
	mux.HandleFunc("GET /api/v1/calendar", h.Calendar.List)
	mux.HandleFunc("POST /api/v1/calendar/entries", h.Calendar.Create)
	mux.HandleFunc("GET /api/v1/calendar/entries/{id}", h.Calendar.Get)
	mux.HandleFunc("PATCH /api/v1/calendar/entries/{id}", h.Calendar.Update)
	mux.HandleFunc("DELETE /api/v1/calendar/entries/{id}", h.Calendar.Delete)

	mux.HandleFunc("GET /api/v1/preferences", h.Preferences.Get)
	mux.HandleFunc("PUT /api/v1/preferences", h.Preferences.Update)

	mux.HandleFunc("GET /api/v1/alerts", h.Alerts.List)
	mux.HandleFunc("POST /api/v1/alerts/{topicId}/save", h.Alerts.Save)
	mux.HandleFunc("POST /api/v1/alerts/{topicId}/dismiss", h.Alerts.Dismiss)

	mux.HandleFunc("GET /api/v1/trends", h.Trends.List)

	return middleware.Chain(apiMW...)(middleware.Metrics(mux))
}
