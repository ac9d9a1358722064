// Package alert records a user's saved and dismissed trend topics.
// Dismissed topics are excluded from every later generation run.
package alert

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

type alertRepo interface {
	Upsert(ctx context.Context, rec domain.AlertRecord) (domain.AlertRecord, error)
	GetByTopic(ctx context.Context, userID uuid.UUID, topicID string) (domain.AlertRecord, error)
	List(ctx context.Context, userID uuid.UUID, status *domain.AlertStatus) ([]domain.AlertRecord, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages alert records.
type Service struct {
	alerts alertRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new alert service.
func NewService(log *slog.Logger, alerts alertRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		alerts: alerts,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "alert"),
	}
}
