package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/trend"
)

type trendService interface {
	ListTrends(ctx context.Context, input trend.ListInput) (*trend.ListResult, error)
}

// TrendHandler serves the ranked trend browse view.
type TrendHandler struct {
	svc  trendService
	errs errorWriter
}

// NewTrendHandler creates a TrendHandler.
func NewTrendHandler(svc trendService, logger *slog.Logger) *TrendHandler {
	return &TrendHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "trend")}}
}

// List handles GET /trends?limit=N.
func (h *TrendHandler) List(w http.ResponseWriter, r *http.Request) {
	var input trend.ListInput
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.errs.write(w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = limit
	}

	result, err := h.svc.ListTrends(r.Context(), input)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrendListResponse(result))
}
