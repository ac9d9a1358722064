package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// DeleteEntry removes an entry in any status. Alerts for its topic are kept.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.LockUser(txCtx, userID); err != nil {
			return fmt.Errorf("lock calendar: %w", err)
		}

		old, err := s.entries.GetByID(txCtx, userID, input.EntryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		if err := s.entries.Delete(txCtx, userID, old.ID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCalendarEntry,
			EntityID:   &old.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"date":   map[string]any{"old": domain.FormatDate(old.Date)},
				"title":  map[string]any{"old": old.Title},
				"status": map[string]any{"old": old.Status.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "calendar entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", input.EntryID.String()),
	)

	return nil
}
