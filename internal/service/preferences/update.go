package preferences

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// Update applies a partial update and stores the result. The first update
// creates the row on top of the defaults.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.UserPreferences, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserPreferences{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.UserPreferences{}, err
	}

	var stored domain.UserPreferences
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.load(txCtx, userID)
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}

		next := input.apply(old)
		next.UserID = userID

		stored, err = s.prefs.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert preferences: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypePreferences,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    diff(old, next),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.UserPreferences{}, err
	}

	s.log.InfoContext(ctx, "preferences updated",
		slog.String("user_id", userID.String()),
		slog.Int("frequency_per_week", stored.FrequencyPerWeek),
		slog.Int("niches", len(stored.Niches)),
	)

	return stored, nil
}

func diff(old, next domain.UserPreferences) map[string]any {
	changes := make(map[string]any)
	if !slices.Equal(old.Niches, next.Niches) {
		changes["niches"] = map[string]any{"old": old.Niches, "new": next.Niches}
	}
	if old.FrequencyPerWeek != next.FrequencyPerWeek {
		changes["frequency_per_week"] = map[string]any{"old": old.FrequencyPerWeek, "new": next.FrequencyPerWeek}
	}
	if !slices.Equal(old.PreferredDays, next.PreferredDays) {
		changes["preferred_days"] = map[string]any{"old": weekdays(old.PreferredDays), "new": weekdays(next.PreferredDays)}
	}
	if old.PreferredTime != next.PreferredTime {
		changes["preferred_time"] = map[string]any{"old": old.PreferredTime.String(), "new": next.PreferredTime.String()}
	}
	if old.Timezone != next.Timezone {
		changes["timezone"] = map[string]any{"old": old.Timezone, "new": next.Timezone}
	}
	return changes
}

func weekdays(days []time.Weekday) []int {
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}
