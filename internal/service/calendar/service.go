// Package calendar implements calendar generation and manual calendar editing.
package calendar

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.CalendarEntry, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CalendarEntry, error)
	HasCommitted(ctx context.Context, userID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
	Merge(ctx context.Context, userID uuid.UUID, entries []domain.CalendarEntry) ([]domain.CalendarEntry, error)
	Create(ctx context.Context, entry domain.CalendarEntry) (*domain.CalendarEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, params domain.CalendarEntryUpdateParams) (*domain.CalendarEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	DeleteGeneratedSuggested(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
}

type preferencesRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error)
}

type alertRepo interface {
	DismissedTopicIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)
}

type trendSource interface {
	FetchTopics(ctx context.Context, niches []string) ([]domain.TrendTopic, error)
}

type userLocker interface {
	LockUser(ctx context.Context, userID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds generation settings.
type Config struct {
	DefaultHorizonDays int
	MaxHorizonDays     int
	Weights            planner.Weights
}

// DefaultConfig returns the stock generation settings.
func DefaultConfig() Config {
	return Config{
		DefaultHorizonDays: 30,
		MaxHorizonDays:     90,
		Weights:            planner.DefaultWeights(),
	}
}

const (
	// MaxListRangeDays bounds ListEntries queries.
	MaxListRangeDays = 366
	// MaxTitleLength bounds entry titles.
	MaxTitleLength = 200
)

// Service provides calendar operations.
type Service struct {
	entries entryRepo
	prefs   preferencesRepo
	alerts  alertRepo
	trends  trendSource
	locker  userLocker
	audit   auditLogger
	tx      txManager
	cfg     Config
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new calendar service.
func NewService(
	log *slog.Logger,
	cfg Config,
	entries entryRepo,
	prefs preferencesRepo,
	alerts alertRepo,
	trends trendSource,
	locker userLocker,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		prefs:   prefs,
		alerts:  alerts,
		trends:  trends,
		locker:  locker,
		audit:   audit,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "calendar"),
	}
}

// WithClock replaces the time source (tests, batch runs for a fixed day).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// loadPreferences returns the user's stored preferences or the defaults.
func loadPreferences(ctx context.Context, repo preferencesRepo, userID uuid.UUID) (domain.UserPreferences, error) {
	prefs, err := repo.Get(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPreferences(userID), nil
	}
	return domain.UserPreferences{}, err
}
