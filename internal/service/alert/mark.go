package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// Save bookmarks a topic. A dismissed topic cannot be saved again.
func (s *Service) Save(ctx context.Context, input TopicInput) (domain.AlertRecord, error) {
	return s.mark(ctx, input, domain.AlertStatusSaved)
}

// Dismiss excludes a topic from generation. It is idempotent and one-way.
// Calendar entries already referencing the topic are kept.
func (s *Service) Dismiss(ctx context.Context, input TopicInput) (domain.AlertRecord, error) {
	return s.mark(ctx, input, domain.AlertStatusDismissed)
}

func (s *Service) mark(ctx context.Context, input TopicInput, status domain.AlertStatus) (domain.AlertRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AlertRecord{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.AlertRecord{}, err
	}
	topicID := strings.TrimSpace(input.TopicID)

	var rec domain.AlertRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.alerts.GetByTopic(txCtx, userID, topicID)
		exists := err == nil
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get alert: %w", err)
		}

		if exists && old.Status == status {
			rec = old
			return nil
		}
		if exists && old.Status == domain.AlertStatusDismissed {
			return fmt.Errorf("topic %s is dismissed: %w", topicID, domain.ErrConflict)
		}

		next := domain.AlertRecord{
			ID:      uuid.New(),
			UserID:  userID,
			TopicID: topicID,
			Niche:   domain.NormalizeText(input.Niche),
			Title:   strings.TrimSpace(input.Title),
			Status:  status,
		}
		if exists {
			next.ID = old.ID
			if next.Niche == "" {
				next.Niche = old.Niche
			}
			if next.Title == "" {
				next.Title = old.Title
			}
		}

		rec, err = s.alerts.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert alert: %w", err)
		}

		action := domain.AuditActionCreate
		changes := map[string]any{"status": map[string]any{"new": status.String()}}
		if exists {
			action = domain.AuditActionUpdate
			changes["status"] = map[string]any{"old": old.Status.String(), "new": status.String()}
		}
		changes["topic_id"] = topicID

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeAlert,
			EntityID:   &rec.ID,
			Action:     action,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return domain.AlertRecord{}, err
	}

	s.log.InfoContext(ctx, "alert recorded",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID),
		slog.String("status", rec.Status.String()),
	)

	return rec, nil
}
