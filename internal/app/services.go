package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/trendplan-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/trendplan-backend/internal/adapter/postgres/audit"
	calendarrepo "github.com/heartmarshall/trendplan-backend/internal/adapter/postgres/calendar"
	prefsrepo "github.com/heartmarshall/trendplan-backend/internal/adapter/postgres/preferences"
	"github.com/heartmarshall/trendplan-backend/internal/config"
	"github.com/heartmarshall/trendplan-backend/internal/service/alert"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
	"github.com/heartmarshall/trendplan-backend/internal/service/preferences"
	"github.com/heartmarshall/trendplan-backend/internal/service/trend"
	"github.com/heartmarshall/trendplan-backend/internal/transport/rest"
)

// Services is the wired service graph shared by the server and batch commands.
type Services struct {
	Calendar    *calendar.Service
	Preferences *preferences.Service
	Alerts      *alert.Service
	Trends      *trend.Service

	// TrendCheck reports the trend feed's health.
	TrendCheck rest.Check
}

// NewServices builds repositories, the trend source and every service on top of db.
func NewServices(cfg *config.Config, db postgres.DB, logger *slog.Logger) (*Services, error) {
	source, check, err := newTrendSource(cfg.TrendSource, logger)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(db)
	locker := postgres.NewUserLocker(db)
	auditRepo := audit.New(db)
	entryRepo := calendarrepo.New(db)
	prefRepo := prefsrepo.New(db)
	alertRepo := alertrepo.New(db)

	weights := weightsFromConfig(cfg.Scheduler)
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("scheduler weights: %w", err)
	}

	return &Services{
		Calendar: calendar.NewService(logger, calendar.Config{
			DefaultHorizonDays: cfg.Scheduler.DefaultHorizonDays,
			MaxHorizonDays:     cfg.Scheduler.MaxHorizonDays,
			Weights:            weights,
		}, entryRepo, prefRepo, alertRepo, source, locker, auditRepo, txm),
		Preferences: preferences.NewService(logger, prefRepo, auditRepo, txm),
		Alerts:      alert.NewService(logger, alertRepo, auditRepo, txm),
		Trends:      trend.NewService(logger, weights, source, prefRepo, alertRepo),
		TrendCheck:  check,
	}, nil
}

func weightsFromConfig(cfg config.SchedulerConfig) planner.Weights {
	return planner.Weights{
		Growth:     cfg.WeightGrowth,
		Views:      cfg.WeightViews,
		Difficulty: cfg.WeightDifficulty,
	}
}
