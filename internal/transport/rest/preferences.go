package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/preferences"
)

type preferencesService interface {
	Get(ctx context.Context) (domain.UserPreferences, error)
	Update(ctx context.Context, input preferences.UpdateInput) (domain.UserPreferences, error)
}

// PreferencesHandler serves the preferences endpoints.
type PreferencesHandler struct {
	svc  preferencesService
	errs errorWriter
}

// NewPreferencesHandler creates a PreferencesHandler.
func NewPreferencesHandler(svc preferencesService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "preferences")}}
}

type updatePreferencesRequest struct {
	Niches           *[]string `json:"niches"`
	FrequencyPerWeek *int      `json:"frequencyPerWeek"`
	PreferredDays    *[]int    `json:"preferredDays"`
	PreferredTime    *string   `json:"preferredTime"`
	Timezone         *string   `json:"timezone"`
}

// Get handles GET /preferences.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Get(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesResponse(prefs))
}

// Update handles PUT /preferences. Omitted fields keep their stored value.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePreferencesRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.errs.write(w, r, err)
		return
	}

	prefs, err := h.svc.Update(r.Context(), preferences.UpdateInput{
		Niches:           req.Niches,
		FrequencyPerWeek: req.FrequencyPerWeek,
		PreferredDays:    req.PreferredDays,
		PreferredTime:    req.PreferredTime,
		Timezone:         req.Timezone,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferencesResponse(prefs))
}
