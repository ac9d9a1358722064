// Package alert implements the alert ledger repository using PostgreSQL.
// One row per (user, topic) records whether the topic was saved or dismissed.
package alert

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

const table = "alerts"

var columns = []string{"id", "user_id", "topic_id", "niche", "title", "status", "created_at", "updated_at"}

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new alert repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertSQL = `
INSERT INTO alerts (id, user_id, topic_id, niche, title, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (user_id, topic_id) DO UPDATE SET
    niche      = EXCLUDED.niche,
    title      = EXCLUDED.title,
    status     = EXCLUDED.status,
    updated_at = now()
WHERE alerts.status <> 'dismissed' OR EXCLUDED.status = 'dismissed'
RETURNING id, user_id, topic_id, niche, title, status, created_at, updated_at`

type alertRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	TopicID   string    `db:"topic_id"`
	Niche     string    `db:"niche"`
	Title     string    `db:"title"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r alertRow) toDomain() domain.AlertRecord {
	return domain.AlertRecord{
		ID:        r.ID,
		UserID:    r.UserID,
		TopicID:   r.TopicID,
		Niche:     r.Niche,
		Title:     r.Title,
		Status:    domain.AlertStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Upsert records an alert keyed by (user_id, topic_id). An existing row keeps
// its id and created_at. A dismissed row is never moved back to saved; that
// attempt returns domain.ErrConflict.
func (r *Repo) Upsert(ctx context.Context, rec domain.AlertRecord) (domain.AlertRecord, error) {
	var row alertRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		rec.ID, rec.UserID, rec.TopicID, rec.Niche, rec.Title, rec.Status.String(),
	)
	if pgxscan.NotFound(err) {
		return domain.AlertRecord{}, fmt.Errorf("alert %s is dismissed: %w", rec.TopicID, domain.ErrConflict)
	}
	if err != nil {
		return domain.AlertRecord{}, mapError(err, rec.TopicID)
	}
	return row.toDomain(), nil
}

// GetByTopic returns the user's alert for a topic.
// Returns domain.ErrNotFound when the topic was never saved or dismissed.
func (r *Repo) GetByTopic(ctx context.Context, userID uuid.UUID, topicID string) (domain.AlertRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "topic_id": topicID}).
		ToSql()
	if err != nil {
		return domain.AlertRecord{}, fmt.Errorf("build get alert: %w", err)
	}

	var row alertRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.AlertRecord{}, mapError(err, topicID)
	}
	return row.toDomain(), nil
}

// List returns the user's alerts, newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, status *domain.AlertStatus) ([]domain.AlertRecord, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "topic_id")
	if status != nil {
		b = b.Where(squirrel.Eq{"status": status.String()})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list alerts: %w", err)
	}

	var rows []alertRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	out := make([]domain.AlertRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// DismissedTopicIDs returns the set of topic ids the user dismissed.
func (r *Repo) DismissedTopicIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	query, args, err := postgres.Builder().
		Select("topic_id").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": domain.AlertStatusDismissed.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dismissed topics: %w", err)
	}

	var ids []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("dismissed topics: %w", err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func mapError(err error, topicID string) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("alert %s: %w", topicID, domain.ErrNotFound)
	}
	return postgres.MapError(err, "alert", topicID)
}
