package alert

import (
	"context"
	"fmt"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// List returns the user's alerts, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.AlertRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.alerts.List(ctx, userID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return recs, nil
}
