package trend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/metrics"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// WarningSourceUnavailable is reported when the catalog could not be fetched.
const WarningSourceUnavailable = "trend source unavailable: showing no topics"

// ListInput holds the parameters for ListTrends.
type ListInput struct {
	Limit int // 0 = DefaultLimit
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxLimit))
	}
	return nil
}

// RankedTopic is one row of the browse view.
type RankedTopic struct {
	Topic domain.TrendTopic
	Score float64
	Saved bool
}

// ListResult is the ranked catalog view.
type ListResult struct {
	Topics   []RankedTopic
	Warnings []string
}

// ListTrends ranks the catalog for the user's niches with the scheduling
// weights. Dismissed topics are hidden.
func (s *Service) ListTrends(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	prefs, err := s.prefs.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		prefs, err = domain.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	alerts, err := s.alerts.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	status := make(map[string]domain.AlertStatus, len(alerts))
	for _, a := range alerts {
		status[a.TopicID] = a.Status
	}

	result := &ListResult{Topics: []RankedTopic{}}

	topics, err := s.trends.FetchTopics(ctx, prefs.Niches)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetch topics: %w", ctxErr)
		}
		metrics.RecordTrendSourceFailure()
		s.log.WarnContext(ctx, "trend source unavailable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		result.Warnings = append(result.Warnings, WarningSourceUnavailable)
		return result, nil
	}

	seen := make(map[string]struct{}, len(topics))
	visible := make([]domain.TrendTopic, 0, len(topics))
	for _, t := range topics {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		if !prefs.AllowsNiche(t.Niche) || status[t.ID] == domain.AlertStatusDismissed {
			continue
		}
		visible = append(visible, t)
	}

	for _, st := range planner.ScoreAndRank(visible, s.weights) {
		if len(result.Topics) == limit {
			break
		}
		result.Topics = append(result.Topics, RankedTopic{
			Topic: st.Topic,
			Score: st.Score,
			Saved: status[st.Topic.ID] == domain.AlertStatusSaved,
		})
	}

	return result, nil
}
