package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/metrics"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// WarningSourceUnavailable is reported when the trend catalog could not be
// fetched and the run proceeded with an empty catalog.
const WarningSourceUnavailable = "trend source unavailable: no new topics were scheduled"

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Entries  []domain.CalendarEntry // entries created by this run
	Removed  int                    // generated suggestions removed by overwrite
	Report   planner.Report
	Warnings []string
	From     time.Time // first day of the horizon
	To       time.Time // last day of the horizon
}

// Generate plans and stores suggested entries for the authenticated user.
// Existing entries are never moved or duplicated; days holding a confirmed
// or published entry are skipped.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	started := s.now()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxHorizonDays); err != nil {
		return nil, err
	}
	horizon := s.cfg.DefaultHorizonDays
	if input.HorizonDays != nil {
		horizon = *input.HorizonDays
	}

	prefs, err := loadPreferences(ctx, s.prefs, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	base := planner.Input{
		UserID:      userID,
		Preferences: prefs,
		HorizonDays: horizon,
		Weights:     s.cfg.Weights,
	}
	if err := planner.Validate(base); err != nil {
		metrics.RecordGeneration(metrics.OutcomeRejected, input.Overwrite, s.now().Sub(started), 0, 0, 0)
		return nil, err
	}

	today := domain.Today(started, prefs.Location())
	last := today.AddDate(0, 0, horizon-1)

	result := &GenerateResult{From: today, To: last}

	// Fetched before taking the lock; the feed may be slow.
	topics, err := s.trends.FetchTopics(ctx, prefs.Niches)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetch topics: %w", ctxErr)
		}
		metrics.RecordTrendSourceFailure()
		s.log.WarnContext(ctx, "trend source unavailable, generating with empty catalog",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		result.Warnings = append(result.Warnings, WarningSourceUnavailable)
		topics = nil
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockUser(txCtx, userID); err != nil {
			return fmt.Errorf("lock calendar: %w", err)
		}

		if input.Overwrite {
			removed, err := s.entries.DeleteGeneratedSuggested(txCtx, userID, today, last)
			if err != nil {
				return fmt.Errorf("remove generated entries: %w", err)
			}
			result.Removed = int(removed)
		}

		excluded, err := s.alerts.DismissedTopicIDs(txCtx, userID)
		if err != nil {
			return fmt.Errorf("load dismissed topics: %w", err)
		}

		// Six days either side so every rolling window touching the horizon is complete.
		existing, err := s.entries.ListRange(txCtx, userID, today.AddDate(0, 0, -6), last.AddDate(0, 0, 6))
		if err != nil {
			return fmt.Errorf("load calendar: %w", err)
		}

		in := base
		in.Topics = topics
		in.ExcludedIDs = excluded
		in.Existing = existing
		in.Today = today

		plan, err := planner.Build(in)
		if err != nil {
			return err
		}

		inserted, err := s.entries.Merge(txCtx, userID, plan.Entries)
		if err != nil {
			return fmt.Errorf("merge entries: %w", err)
		}

		result.Entries = inserted
		result.Report = plan.Report
		result.Report.Assigned = len(inserted)

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCalendarEntry,
			Action:     domain.AuditActionGenerate,
			Changes: map[string]any{
				"from":      domain.FormatDate(today),
				"to":        domain.FormatDate(last),
				"assigned":  len(inserted),
				"removed":   result.Removed,
				"overwrite": input.Overwrite,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, domain.ErrInvalidPreferences) {
			outcome = metrics.OutcomeRejected
		}
		metrics.RecordGeneration(outcome, input.Overwrite, s.now().Sub(started), 0, 0, 0)
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	if len(result.Warnings) > 0 {
		outcome = metrics.OutcomePartial
	}
	metrics.RecordGeneration(outcome, input.Overwrite, s.now().Sub(started),
		result.Report.Assigned, result.Report.TopicShortfall, result.Report.CapacityShortfall)

	s.log.InfoContext(ctx, "calendar generated",
		slog.String("user_id", userID.String()),
		slog.String("from", domain.FormatDate(today)),
		slog.String("to", domain.FormatDate(last)),
		slog.Int("assigned", result.Report.Assigned),
		slog.Int("removed", result.Removed),
		slog.Int("topic_shortfall", result.Report.TopicShortfall),
		slog.Int("capacity_shortfall", result.Report.CapacityShortfall),
	)

	return result, nil
}
