package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar"
)

type calendarService interface {
	Generate(ctx context.Context, input calendar.GenerateInput) (*calendar.GenerateResult, error)
	ListEntries(ctx context.Context, input calendar.ListEntriesInput) ([]domain.CalendarEntry, error)
	GetEntry(ctx context.Context, input calendar.GetEntryInput) (*domain.CalendarEntry, error)
	CreateEntry(ctx context.Context, input calendar.CreateEntryInput) (*domain.CalendarEntry, error)
	UpdateEntry(ctx context.Context, input calendar.UpdateEntryInput) (*domain.CalendarEntry, error)
	DeleteEntry(ctx context.Context, input calendar.DeleteEntryInput) error
}

// CalendarHandler serves calendar endpoints.
type CalendarHandler struct {
	svc  calendarService
	errs errorWriter
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendarService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "calendar")}}
}

type generateRequest struct {
	HorizonDays *int  `json:"horizonDays"`
	Overwrite   *bool `json:"overwrite"`
}

type createEntryRequest struct {
	Date    string  `json:"date"`
	Title   string  `json:"title"`
	TopicID *string `json:"topicId"`
	Status  *string `json:"status"`
	Time    *string `json:"time"`
}

type updateEntryRequest struct {
	Title  *string `json:"title"`
	Date   *string `json:"date"`
	Status *string `json:"status"`
}

// Generate handles POST /calendar/generate. The body is optional.
func (h *CalendarHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req, true); err != nil {
		h.errs.write(w, r, err)
		return
	}

	input := calendar.GenerateInput{HorizonDays: req.HorizonDays}
	if req.Overwrite != nil {
		input.Overwrite = *req.Overwrite
	}

	result, err := h.svc.Generate(r.Context(), input)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGenerateResponse(result))
}

// List handles GET /calendar?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	q := r.URL.Query()
	from, fe := parseDateField("from", q.Get("from"))
	errs = append(errs, fe...)
	to, fe := parseDateField("to", q.Get("to"))
	errs = append(errs, fe...)
	if len(errs) > 0 {
		h.errs.write(w, r, domain.NewValidationErrors(errs))
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), calendar.ListEntriesInput{From: from, To: to})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": toEntryResponses(entries)})
}

// Get handles GET /calendar/entries/{id}.
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), calendar.GetEntryInput{EntryID: id})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Create handles POST /calendar/entries.
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.errs.write(w, r, err)
		return
	}

	var errs []domain.FieldError
	input := calendar.CreateEntryInput{Title: req.Title, TopicID: req.TopicID}

	date, fe := parseDateField("date", req.Date)
	errs = append(errs, fe...)
	input.Date = date

	if req.Status != nil {
		status := domain.EntryStatus(strings.ToLower(*req.Status))
		input.Status = &status
	}
	if req.Time != nil {
		tod, err := domain.ParseTimeOfDay(*req.Time)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "time", Message: "must be HH:MM"})
		} else {
			input.Time = &tod
		}
	}
	if len(errs) > 0 {
		h.errs.write(w, r, domain.NewValidationErrors(errs))
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), input)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

// Update handles PATCH /calendar/entries/{id}.
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	var req updateEntryRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.errs.write(w, r, err)
		return
	}

	input := calendar.UpdateEntryInput{EntryID: id, Title: req.Title}
	if req.Date != nil {
		date, fe := parseDateField("date", *req.Date)
		if len(fe) > 0 {
			h.errs.write(w, r, domain.NewValidationErrors(fe))
			return
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := domain.EntryStatus(strings.ToLower(*req.Status))
		input.Status = &status
	}

	entry, err := h.svc.UpdateEntry(r.Context(), input)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Delete handles DELETE /calendar/entries/{id}.
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), calendar.DeleteEntryInput{EntryID: id}); err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeNoContent(w)
}

func parseDateField(field, raw string) (time.Time, []domain.FieldError) {
	if raw == "" {
		return time.Time{}, []domain.FieldError{{Field: field, Message: "required"}}
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, []domain.FieldError{{Field: field, Message: "must be YYYY-MM-DD"}}
	}
	return d, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
