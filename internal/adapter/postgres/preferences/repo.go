// Package preferences implements the user preferences repository using PostgreSQL.
package preferences

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/trendplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// Repo provides preference persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new preferences repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertSQL = `
INSERT INTO user_preferences (user_id, niches, frequency_per_week, preferred_days, preferred_time, timezone, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (user_id) DO UPDATE SET
    niches             = EXCLUDED.niches,
    frequency_per_week = EXCLUDED.frequency_per_week,
    preferred_days     = EXCLUDED.preferred_days,
    preferred_time     = EXCLUDED.preferred_time,
    timezone           = EXCLUDED.timezone,
    updated_at         = now()
RETURNING user_id, niches, frequency_per_week, preferred_days, preferred_time, timezone, updated_at`

type prefsRow struct {
	UserID           uuid.UUID `db:"user_id"`
	Niches           []string  `db:"niches"`
	FrequencyPerWeek int       `db:"frequency_per_week"`
	PreferredDays    []int16   `db:"preferred_days"`
	PreferredTime    string    `db:"preferred_time"`
	Timezone         string    `db:"timezone"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Get returns the stored preferences for a user.
// Returns domain.ErrNotFound when the user has never saved any.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "niches", "frequency_per_week", "preferred_days", "preferred_time", "timezone", "updated_at").
		From("user_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("build get preferences: %w", err)
	}

	var row prefsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.UserPreferences{}, mapError(err, userID)
	}
	return row.toDomain(), nil
}

// Upsert creates or replaces the user's preferences and returns the stored row.
func (r *Repo) Upsert(ctx context.Context, p domain.UserPreferences) (domain.UserPreferences, error) {
	niches := p.Niches
	if niches == nil {
		niches = []string{}
	}
	days := make([]int16, len(p.PreferredDays))
	for i, d := range p.PreferredDays {
		days[i] = int16(d)
	}

	var row prefsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		p.UserID, niches, p.FrequencyPerWeek, days, p.PreferredTime.String(), p.Timezone,
	)
	if err != nil {
		return domain.UserPreferences{}, mapError(err, p.UserID)
	}
	return row.toDomain(), nil
}

func (r prefsRow) toDomain() domain.UserPreferences {
	at, _ := domain.ParseTimeOfDay(r.PreferredTime)
	p := domain.UserPreferences{
		UserID:           r.UserID,
		FrequencyPerWeek: r.FrequencyPerWeek,
		PreferredTime:    at,
		Timezone:         r.Timezone,
		UpdatedAt:        r.UpdatedAt,
	}
	if len(r.Niches) > 0 {
		p.Niches = r.Niches
	}
	for _, d := range r.PreferredDays {
		p.PreferredDays = append(p.PreferredDays, time.Weekday(d))
	}
	return p
}

func mapError(err error, userID uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("preferences %s: %w", userID, domain.ErrNotFound)
	}
	return postgres.MapError(err, "preferences", userID)
}
