package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferences is the per-user content-production configuration.
// A value of this type is treated as an immutable snapshot once handed to
// the scheduler.
type UserPreferences struct {
	UserID           uuid.UUID
	Niches           []string       // empty = no niche filter
	FrequencyPerWeek int            // upper bound per rolling 7-day window
	PreferredDays    []time.Weekday // empty = every day
	PreferredTime    TimeOfDay
	Timezone         string
	UpdatedAt        time.Time
}

// DefaultPreferences returns the preferences used before the user saves any.
func DefaultPreferences(userID uuid.UUID) UserPreferences {
	return UserPreferences{
		UserID:           userID,
		FrequencyPerWeek: 3,
		PreferredTime:    TimeOfDay{Hour: 9},
		Timezone:         "UTC",
	}
}

// Clone returns a deep copy so callers cannot mutate a shared snapshot.
func (p UserPreferences) Clone() UserPreferences {
	out := p
	out.Niches = append([]string(nil), p.Niches...)
	out.PreferredDays = append([]time.Weekday(nil), p.PreferredDays...)
	return out
}

// Location resolves the preference timezone, falling back to UTC.
func (p UserPreferences) Location() *time.Location {
	return ParseTimezone(p.Timezone)
}

// AllowsDay reports whether d is one of the preferred weekdays.
func (p UserPreferences) AllowsDay(d time.Weekday) bool {
	if len(p.PreferredDays) == 0 {
		return true
	}
	for _, pd := range p.PreferredDays {
		if pd == d {
			return true
		}
	}
	return false
}

// AllowsNiche reports whether a (normalized) niche passes the niche filter.
func (p UserPreferences) AllowsNiche(niche string) bool {
	if len(p.Niches) == 0 {
		return true
	}
	n := NormalizeText(niche)
	for _, want := range p.Niches {
		if NormalizeText(want) == n {
			return true
		}
	}
	return false
}
