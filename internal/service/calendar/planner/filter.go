package planner

import "github.com/heartmarshall/trendplan-backend/internal/domain"

// filterResult is the outcome of the filter step.
type filterResult struct {
	kept             []domain.TrendTopic
	filtered         int // niche mismatch, dismissed, duplicate within the catalog
	alreadyScheduled int
}

// filterTopics drops topics outside the niche set, dismissed topics, topics
// already referenced by a calendar entry, and repeated IDs (first wins).
func filterTopics(
	topics []domain.TrendTopic,
	prefs domain.UserPreferences,
	excluded map[string]struct{},
	scheduled map[string]struct{},
) filterResult {
	var res filterResult
	seen := make(map[string]struct{}, len(topics))

	for _, t := range topics {
		if _, dup := seen[t.ID]; dup || t.ID == "" {
			res.filtered++
			continue
		}
		seen[t.ID] = struct{}{}

		if !prefs.AllowsNiche(t.Niche) {
			res.filtered++
			continue
		}
		if _, ok := excluded[t.ID]; ok {
			res.filtered++
			continue
		}
		if _, ok := scheduled[t.ID]; ok {
			res.alreadyScheduled++
			continue
		}
		res.kept = append(res.kept, t)
	}
	return res
}
