package calendar

import (
	"context"
	"fmt"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// ListEntries returns the authenticated user's entries in [From, To], both inclusive.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.CalendarEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListRange(ctx, userID, domain.DateOf(input.From), domain.DateOf(input.To))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// GetEntry returns one of the authenticated user's entries.
func (s *Service) GetEntry(ctx context.Context, input GetEntryInput) (*domain.CalendarEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, userID, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
