package preferences

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

const (
	MinFrequencyPerWeek = 1
	MaxFrequencyPerWeek = 21
	MaxNiches           = 50
	MaxNicheLength      = 64
)

// UpdateInput is a partial update. Nil fields keep their stored value;
// an empty (non-nil) Niches or PreferredDays clears the filter.
type UpdateInput struct {
	Niches           *[]string
	FrequencyPerWeek *int
	PreferredDays    *[]int
	PreferredTime    *string // HH:MM
	Timezone         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Niches == nil && i.FrequencyPerWeek == nil && i.PreferredDays == nil && i.PreferredTime == nil && i.Timezone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Niches != nil {
		if len(*i.Niches) > MaxNiches {
			errs = append(errs, domain.FieldError{Field: "niches", Message: fmt.Sprintf("max %d niches", MaxNiches)})
		}
		for idx, n := range *i.Niches {
			field := fmt.Sprintf("niches[%d]", idx)
			n = strings.TrimSpace(n)
			if n == "" {
				errs = append(errs, domain.FieldError{Field: field, Message: "must not be empty"})
			} else if len([]rune(n)) > MaxNicheLength {
				errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxNicheLength)})
			}
		}
	}

	if i.FrequencyPerWeek != nil {
		f := *i.FrequencyPerWeek
		if f < MinFrequencyPerWeek || f > MaxFrequencyPerWeek {
			errs = append(errs, domain.FieldError{
				Field:   "frequency_per_week",
				Message: fmt.Sprintf("must be between %d and %d", MinFrequencyPerWeek, MaxFrequencyPerWeek),
			})
		}
	}

	if i.PreferredDays != nil {
		seen := make(map[int]struct{}, len(*i.PreferredDays))
		for _, d := range *i.PreferredDays {
			if d < int(time.Sunday) || d > int(time.Saturday) {
				errs = append(errs, domain.FieldError{Field: "preferred_days", Message: fmt.Sprintf("weekday %d out of range 0-6", d)})
				continue
			}
			if _, dup := seen[d]; dup {
				errs = append(errs, domain.FieldError{Field: "preferred_days", Message: fmt.Sprintf("duplicate weekday %d", d)})
			}
			seen[d] = struct{}{}
		}
	}

	if i.PreferredTime != nil {
		if _, err := domain.ParseTimeOfDay(*i.PreferredTime); err != nil {
			errs = append(errs, domain.FieldError{Field: "preferred_time", Message: "must be HH:MM"})
		}
	}

	if i.Timezone != nil {
		if _, err := time.LoadLocation(*i.Timezone); err != nil || *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply returns a copy of p with the input's fields set. Validate must pass first.
func (i UpdateInput) apply(p domain.UserPreferences) domain.UserPreferences {
	out := p.Clone()
	if i.Niches != nil {
		out.Niches = domain.NormalizeNiches(*i.Niches)
	}
	if i.FrequencyPerWeek != nil {
		out.FrequencyPerWeek = *i.FrequencyPerWeek
	}
	if i.PreferredDays != nil {
		days := make([]int, len(*i.PreferredDays))
		copy(days, *i.PreferredDays)
		slices.Sort(days)
		out.PreferredDays = nil
		for _, d := range days {
			out.PreferredDays = append(out.PreferredDays, time.Weekday(d))
		}
	}
	if i.PreferredTime != nil {
		out.PreferredTime, _ = domain.ParseTimeOfDay(*i.PreferredTime)
	}
	if i.Timezone != nil {
		out.Timezone = *i.Timezone
	}
	return out
}
