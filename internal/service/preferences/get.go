package preferences

import (
	"context"
	"fmt"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// Get returns the user's preferences, or the defaults if none were saved.
func (s *Service) Get(ctx context.Context) (domain.UserPreferences, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserPreferences{}, domain.ErrUnauthorized
	}

	p, err := s.load(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}
