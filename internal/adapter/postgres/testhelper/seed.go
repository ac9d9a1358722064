//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// SeedPreferences stores preferences for a fresh user and returns them.
func SeedPreferences(t *testing.T, pool *pgxpool.Pool, freq int, days ...time.Weekday) domain.UserPreferences {
	t.Helper()

	prefs := domain.DefaultPreferences(uuid.New())
	prefs.FrequencyPerWeek = freq
	prefs.PreferredDays = days

	dayInts := make([]int16, len(days))
	for i, d := range days {
		dayInts[i] = int16(d)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_preferences (user_id, niches, frequency_per_week, preferred_days, preferred_time, timezone, updated_at)
		 VALUES ($1, '{}', $2, $3, $4, $5, now())`,
		prefs.UserID, prefs.FrequencyPerWeek, dayInts, prefs.PreferredTime.String(), prefs.Timezone,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPreferences: %v", err)
	}
	return prefs
}

// SeedEntry inserts a calendar entry as-is.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, e domain.CalendarEntry) domain.CalendarEntry {
	t.Helper()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO calendar_entries (id, user_id, entry_date, topic_id, title, status, source, scheduled_time, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.UserID, e.Date, e.TopicID, e.Title, e.Status.String(), e.Source.String(), e.ScheduledTime.String(), e.Score,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	return e
}

// CountEntries returns how many calendar entries a user has.
func CountEntries(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM calendar_entries WHERE user_id = $1`, userID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountEntries: %v", err)
	}
	return n
}
