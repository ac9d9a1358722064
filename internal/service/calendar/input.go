package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// GenerateInput holds the parameters for a generation run.
type GenerateInput struct {
	HorizonDays *int // nil = configured default
	Overwrite   bool // remove generated suggestions in the horizon first
}

// Validate checks the horizon against the configured maximum. A zero or
// negative horizon is left to the planner, which rejects it as invalid
// preferences.
func (i GenerateInput) Validate(maxHorizon int) error {
	if i.HorizonDays != nil && maxHorizon > 0 && *i.HorizonDays > maxHorizon {
		return domain.NewValidationError("horizon_days", fmt.Sprintf("max %d", maxHorizon))
	}
	return nil
}

// ListEntriesInput holds the parameters for listing a date range.
type ListEntriesInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() {
		days := domain.DaysBetween(i.From, i.To)
		if days < 0 {
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		}
		if days >= MaxListRangeDays {
			errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("range must be under %d days", MaxListRangeDays)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEntryInput holds the parameters for a manual entry.
type CreateEntryInput struct {
	Date    time.Time
	Title   string
	TopicID *string
	Status  *domain.EntryStatus // nil = confirmed
	Time    *domain.TimeOfDay   // nil = preferred time
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	if i.TopicID != nil && strings.TrimSpace(*i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must not be empty"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Time != nil && !i.Time.IsValid() {
		errs = append(errs, domain.FieldError{Field: "time", Message: "invalid time of day"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for editing an entry.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	Title   *string
	Date    *time.Time
	Status  *domain.EntryStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Title == nil && i.Date == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetEntryInput identifies a single entry.
type GetEntryInput struct {
	EntryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetEntryInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}
	return nil
}

// DeleteEntryInput holds the parameters for deleting an entry.
type DeleteEntryInput struct {
	EntryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteEntryInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len([]rune(t)) > MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)}}
	}
	return nil
}
