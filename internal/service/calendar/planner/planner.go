// Package planner allocates ranked trend topics onto calendar days.
// It performs no I/O: callers load preferences, exclusions and the existing
// calendar, and persist the returned entries.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// Input is everything one generation run depends on.
type Input struct {
	UserID      uuid.UUID
	Topics      []domain.TrendTopic
	Preferences domain.UserPreferences
	ExcludedIDs map[string]struct{}
	// Existing holds calendar entries in and around the horizon. Entries up
	// to six days on either side matter for the frequency window.
	Existing    []domain.CalendarEntry
	Today       time.Time
	HorizonDays int
	Weights     Weights
}

// Report summarizes a run. Shortfalls are informational, not errors.
type Report struct {
	TopicsConsidered       int
	TopicsFiltered         int
	TopicsAlreadyScheduled int
	EligibleDates          int
	Assigned               int
	TopicShortfall         int // open dates left without a topic
	CapacityShortfall      int // eligible dates blocked by the weekly cap
}

// Plan is the result of a generation run.
type Plan struct {
	Entries []domain.CalendarEntry
	Ranked  []ScoredTopic
	Report  Report
}

// Build runs filter, score, rank, slot enumeration and allocation.
// Identical inputs always produce identical plans.
func Build(in Input) (Plan, error) {
	if err := Validate(in); err != nil {
		return Plan{}, err
	}

	prefs := in.Preferences.Clone()
	today := domain.DateOf(in.Today)

	scheduled := make(map[string]struct{})
	for _, e := range in.Existing {
		if e.TopicID != nil {
			scheduled[*e.TopicID] = struct{}{}
		}
	}

	fr := filterTopics(in.Topics, prefs, in.ExcludedIDs, scheduled)
	ranked := ScoreAndRank(fr.kept, in.Weights)

	report := Report{
		TopicsConsidered:       len(in.Topics),
		TopicsFiltered:         fr.filtered,
		TopicsAlreadyScheduled: fr.alreadyScheduled,
	}

	occ := newOccupancy(today, in.Existing)
	var entries []domain.CalendarEntry
	next := 0

	for day := 0; day < in.HorizonDays; day++ {
		date := occ.date(day)
		if !prefs.AllowsDay(date.Weekday()) {
			continue
		}
		if _, ok := occ.committed[day]; ok {
			continue
		}
		if _, ok := occ.suggested[day]; ok {
			continue
		}
		report.EligibleDates++

		if !occ.fits(day, prefs.FrequencyPerWeek) {
			report.CapacityShortfall++
			continue
		}
		if next >= len(ranked) {
			report.TopicShortfall++
			continue
		}

		pick := ranked[next]
		next++
		occ.claim(day)
		entries = append(entries, newEntry(in.UserID, date, pick, prefs.PreferredTime))
	}

	report.Assigned = len(entries)

	return Plan{Entries: entries, Ranked: ranked, Report: report}, nil
}

func newEntry(userID uuid.UUID, date time.Time, pick ScoredTopic, at domain.TimeOfDay) domain.CalendarEntry {
	topicID := pick.Topic.ID
	score := pick.Score
	return domain.CalendarEntry{
		ID:            domain.GeneratedEntryID(userID, date, topicID),
		UserID:        userID,
		Date:          date,
		TopicID:       &topicID,
		Title:         pick.Topic.Title,
		Status:        domain.EntryStatusSuggested,
		Source:        domain.EntrySourceGenerated,
		ScheduledTime: at,
		Score:         &score,
	}
}

// Validate checks the parts of in that make a run impossible. Build calls it
// first; callers may call it before doing any I/O.
func Validate(in Input) error {
	p := in.Preferences
	if p.FrequencyPerWeek <= 0 {
		return &domain.PreferencesError{Field: "frequency_per_week", Reason: fmt.Sprintf("must be > 0 (got %d)", p.FrequencyPerWeek)}
	}
	if in.HorizonDays <= 0 {
		return &domain.PreferencesError{Field: "horizon_days", Reason: fmt.Sprintf("must be > 0 (got %d)", in.HorizonDays)}
	}
	for _, d := range p.PreferredDays {
		if d < time.Sunday || d > time.Saturday {
			return &domain.PreferencesError{Field: "preferred_days", Reason: fmt.Sprintf("weekday %d out of range 0-6", d)}
		}
	}
	if err := in.Weights.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	return nil
}
