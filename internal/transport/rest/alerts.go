package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/alert"
)

type alertService interface {
	List(ctx context.Context, input alert.ListInput) ([]domain.AlertRecord, error)
	Save(ctx context.Context, input alert.TopicInput) (domain.AlertRecord, error)
	Dismiss(ctx context.Context, input alert.TopicInput) (domain.AlertRecord, error)
}

// AlertHandler serves the saved/dismissed topic endpoints.
type AlertHandler struct {
	svc  alertService
	errs errorWriter
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "alert")}}
}

type markTopicRequest struct {
	Niche string `json:"niche"`
	Title string `json:"title"`
}

// List handles GET /alerts?status=saved|dismissed.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	var input alert.ListInput
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.AlertStatus(strings.ToLower(raw))
		input.Status = &status
	}

	records, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	out := make([]alertResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toAlertResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": out})
}

// Save handles POST /alerts/{topicId}/save.
func (h *AlertHandler) Save(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.svc.Save)
}

// Dismiss handles POST /alerts/{topicId}/dismiss.
func (h *AlertHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.svc.Dismiss)
}

func (h *AlertHandler) mark(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, alert.TopicInput) (domain.AlertRecord, error),
) {
	var req markTopicRequest
	if err := decodeBody(r, &req, true); err != nil {
		h.errs.write(w, r, err)
		return
	}

	record, err := op(r.Context(), alert.TopicInput{
		TopicID: r.PathValue("topicId"),
		Niche:   req.Niche,
		Title:   req.Title,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(record))
}
