package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// UpdateEntry edits an entry's title, date or status.
//
// Status only moves forward one step: suggested -> confirmed -> published.
// Changing the title or date of a generated entry turns it into a manual one,
// so overwrite runs leave it alone.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.CalendarEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.CalendarEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockUser(txCtx, userID); err != nil {
			return fmt.Errorf("lock calendar: %w", err)
		}

		old, err := s.entries.GetByID(txCtx, userID, input.EntryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		params, changes, err := buildUpdate(old, input)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			updated = old
			return nil
		}

		targetDate := old.Date
		if params.Date != nil {
			targetDate = *params.Date
		}
		targetStatus := old.Status
		if params.Status != nil {
			targetStatus = *params.Status
		}
		if targetStatus.IsCommitted() && (params.Date != nil || params.Status != nil) {
			taken, err := s.entries.HasCommitted(txCtx, userID, targetDate, old.ID)
			if err != nil {
				return fmt.Errorf("check day: %w", err)
			}
			if taken {
				return fmt.Errorf("%s already holds a committed entry: %w", domain.FormatDate(targetDate), domain.ErrConflict)
			}
		}

		updated, err = s.entries.Update(txCtx, userID, old.ID, params)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCalendarEntry,
			EntityID:   &old.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "calendar entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// buildUpdate diffs input against the stored entry. Unchanged fields are left
// out of both the params and the audit changes.
func buildUpdate(old *domain.CalendarEntry, input UpdateEntryInput) (domain.CalendarEntryUpdateParams, map[string]any, error) {
	var params domain.CalendarEntryUpdateParams
	changes := make(map[string]any)
	edited := false

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != old.Title {
			params.Title = &title
			changes["title"] = map[string]any{"old": old.Title, "new": title}
			edited = true
		}
	}

	if input.Date != nil {
		date := domain.DateOf(*input.Date)
		if !date.Equal(old.Date) {
			params.Date = &date
			changes["date"] = map[string]any{"old": domain.FormatDate(old.Date), "new": domain.FormatDate(date)}
			edited = true
		}
	}

	if input.Status != nil && *input.Status != old.Status {
		if !old.Status.CanTransitionTo(*input.Status) {
			return params, nil, &domain.TransitionError{From: old.Status, To: *input.Status}
		}
		status := *input.Status
		params.Status = &status
		changes["status"] = map[string]any{"old": old.Status.String(), "new": status.String()}
	}

	if edited && old.Source == domain.EntrySourceGenerated {
		manual := domain.EntrySourceManual
		params.Source = &manual
		changes["source"] = map[string]any{"old": old.Source.String(), "new": manual.String()}
	}

	return params, changes, nil
}
