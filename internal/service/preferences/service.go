// Package preferences manages per-user content-production settings.
package preferences

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

type preferencesRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error)
	Upsert(ctx context.Context, p domain.UserPreferences) (domain.UserPreferences, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reads and updates user preferences.
type Service struct {
	prefs preferencesRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new preferences service.
func NewService(log *slog.Logger, prefs preferencesRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		prefs: prefs,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "preferences"),
	}
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	p, err := s.prefs.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPreferences(userID), nil
	}
	return p, err
}
