package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// CreateEntry adds a manual entry. Manual entries are never touched by
// generation. A confirmed or published entry cannot share its day with
// another committed entry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.CalendarEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.EntryStatusConfirmed
	if input.Status != nil {
		status = *input.Status
	}

	at := domain.TimeOfDay{}
	if input.Time != nil {
		at = *input.Time
	} else {
		prefs, err := loadPreferences(ctx, s.prefs, userID)
		if err != nil {
			return nil, fmt.Errorf("load preferences: %w", err)
		}
		at = prefs.PreferredTime
	}

	var topicID *string
	if input.TopicID != nil {
		id := strings.TrimSpace(*input.TopicID)
		topicID = &id
	}

	draft := domain.CalendarEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          domain.DateOf(input.Date),
		TopicID:       topicID,
		Title:         strings.TrimSpace(input.Title),
		Status:        status,
		Source:        domain.EntrySourceManual,
		ScheduledTime: at,
	}

	var entry *domain.CalendarEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockUser(txCtx, userID); err != nil {
			return fmt.Errorf("lock calendar: %w", err)
		}

		if status.IsCommitted() {
			taken, err := s.entries.HasCommitted(txCtx, userID, draft.Date, uuid.Nil)
			if err != nil {
				return fmt.Errorf("check day: %w", err)
			}
			if taken {
				return fmt.Errorf("%s already holds a committed entry: %w", domain.FormatDate(draft.Date), domain.ErrConflict)
			}
		}

		var createErr error
		entry, createErr = s.entries.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCalendarEntry,
			EntityID:   &entry.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"date":   map[string]any{"new": domain.FormatDate(entry.Date)},
				"title":  map[string]any{"new": entry.Title},
				"status": map[string]any{"new": entry.Status.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "calendar entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("date", domain.FormatDate(entry.Date)),
		slog.String("status", entry.Status.String()),
	)

	return entry, nil
}
