// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/trendplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			record.ID, record.UserID, record.EntityType.String(), record.EntityID,
			record.Action.String(), changesJSON, record.CreatedAt,
		).
		Suffix("RETURNING id, user_id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build create audit_record: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return toDomainAuditRecord(row)
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies the auditLogger interfaces of the calendar, preferences and alert services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, "get audit_records by entity", postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_type": entityType.String(), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// GetByUser returns audit log records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	return r.list(ctx, "get audit_records by user", postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *Repo) list(ctx context.Context, op string, b squirrel.SelectBuilder) ([]domain.AuditRecord, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomainAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// toDomainAuditRecord converts an audit_log row into a domain.AuditRecord.
func toDomainAuditRecord(row auditRow) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}

	// changes: JSONB -> map[string]any
	if len(row.Changes) > 0 && string(row.Changes) != "null" {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
