// Package trend serves the ranked trend catalog for browsing.
package trend

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
)

type trendSource interface {
	FetchTopics(ctx context.Context, niches []string) ([]domain.TrendTopic, error)
}

type preferencesRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error)
}

type alertRepo interface {
	List(ctx context.Context, userID uuid.UUID, status *domain.AlertStatus) ([]domain.AlertRecord, error)
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service ranks the live catalog for a user.
type Service struct {
	trends  trendSource
	prefs   preferencesRepo
	alerts  alertRepo
	weights planner.Weights
	log     *slog.Logger
}

// NewService creates a new trend service scoring with weights.
func NewService(log *slog.Logger, weights planner.Weights, trends trendSource, prefs preferencesRepo, alerts alertRepo) *Service {
	return &Service{
		trends:  trends,
		prefs:   prefs,
		alerts:  alerts,
		weights: weights,
		log:     log.With("service", "trend"),
	}
}
