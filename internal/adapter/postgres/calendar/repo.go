// Package calendar implements the calendar entry repository using PostgreSQL.
// Generated entries are merged under a guard that never places them on a day
// that already holds a confirmed or published entry.
package calendar

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

const table = "calendar_entries"

var columns = []string{
	"id", "user_id", "entry_date", "topic_id", "title", "status",
	"source", "scheduled_time", "score", "created_at", "updated_at",
}

const returning = "RETURNING id, user_id, entry_date, topic_id, title, status, source, scheduled_time, score, created_at, updated_at"

// Repo provides calendar entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new calendar repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// mergeSQL inserts one generated entry unless its day already holds a
// committed entry or the deterministic id is already present.
const mergeSQL = `
INSERT INTO calendar_entries
    (id, user_id, entry_date, topic_id, title, status, source, scheduled_time, score, created_at, updated_at)
SELECT $1::uuid, $2::uuid, $3::date, $4::text, $5::text, $6::text, $7::text, $8::text, $9::double precision, now(), now()
WHERE NOT EXISTS (
    SELECT 1 FROM calendar_entries
    WHERE user_id = $2 AND entry_date = $3 AND status IN ('confirmed', 'published')
)
ON CONFLICT (id) DO NOTHING
` + returning

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key with user_id filter.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.CalendarEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get calendar_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, entryID)
	}

	e := row.toDomain()
	return &e, nil
}

// ListRange returns a user's entries with from <= date <= to, ordered by
// date, creation time and id. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CalendarEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"entry_date": domain.DateOf(from)}).
		Where(squirrel.LtOrEq{"entry_date": domain.DateOf(to)}).
		OrderBy("entry_date", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list calendar_entries: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list calendar_entries: %w", err)
	}

	return toDomainEntries(rows), nil
}

// HasCommitted reports whether the user already has a confirmed or published
// entry on date, ignoring excludeID (uuid.Nil ignores nothing).
func (r *Repo) HasCommitted(ctx context.Context, userID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	sub := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{
			"user_id":    userID,
			"entry_date": domain.DateOf(date),
			"status":     []string{domain.EntryStatusConfirmed.String(), domain.EntryStatusPublished.String()},
		})
	if excludeID != uuid.Nil {
		sub = sub.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := postgres.Builder().
		Select().
		Column(squirrel.Expr("EXISTS(?)", sub)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build has committed: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("has committed calendar_entry: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Merge inserts generated entries and returns those actually inserted, in
// input order. Entries whose day holds a committed entry, or whose id already
// exists, are skipped. Callers run it inside a transaction.
func (r *Repo) Merge(ctx context.Context, userID uuid.UUID, entries []domain.CalendarEntry) ([]domain.CalendarEntry, error) {
	if len(entries) == 0 {
		return []domain.CalendarEntry{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	inserted := make([]domain.CalendarEntry, 0, len(entries))

	for _, e := range entries {
		var rows []entryRow
		err := pgxscan.Select(ctx, q, &rows, mergeSQL,
			e.ID, userID, domain.DateOf(e.Date), e.TopicID, e.Title,
			e.Status.String(), e.Source.String(), e.ScheduledTime.String(), e.Score,
		)
		if err != nil {
			return nil, mapError(err, e.ID)
		}
		for _, row := range rows {
			inserted = append(inserted, row.toDomain())
		}
	}

	return inserted, nil
}

// Create inserts a single entry and returns the persisted row.
// A second committed entry on the same day fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e domain.CalendarEntry) (*domain.CalendarEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns[:9]...).
		Values(
			e.ID, e.UserID, domain.DateOf(e.Date), e.TopicID, e.Title,
			e.Status.String(), e.Source.String(), e.ScheduledTime.String(), e.Score,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create calendar_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, e.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.CalendarEntryUpdateParams) (*domain.CalendarEntry, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		Suffix(returning)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Date != nil {
		b = b.Set("entry_date", domain.DateOf(*params.Date))
	}
	if params.Status != nil {
		b = b.Set("status", params.Status.String())
	}
	if params.Source != nil {
		b = b.Set("source", params.Source.String())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update calendar_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, entryID)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes an entry. Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete calendar_entry: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("calendar_entry %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}

// DeleteGeneratedSuggested removes generated entries still in suggested state
// with from <= date <= to and returns how many were removed.
func (r *Repo) DeleteGeneratedSuggested(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{
			"user_id": userID,
			"source":  domain.EntrySourceGenerated.String(),
			"status":  domain.EntryStatusSuggested.String(),
		}).
		Where(squirrel.GtOrEq{"entry_date": domain.DateOf(from)}).
		Where(squirrel.LtOrEq{"entry_date": domain.DateOf(to)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete generated entries: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete generated entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func mapError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("calendar_entry %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "calendar_entry", id)
}
