// Package trend holds the wire format shared by the trend catalog adapters.
package trend

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// Catalog is the JSON document served by trend feeds and stored in static catalogs.
type Catalog struct {
	Topics []Topic `json:"topics"`
}

// Topic is one trending topic on the wire.
type Topic struct {
	ID         string  `json:"id"`
	Niche      string  `json:"niche"`
	Title      string  `json:"title"`
	Views      int64   `json:"views"`
	GrowthRate float64 `json:"growth_rate"`
	Difficulty string  `json:"difficulty"`
}

// Decode parses a catalog document. Records without an id or title, or with
// negative views, are dropped and counted in skipped.
func Decode(data []byte) (topics []domain.TrendTopic, skipped int, err error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, 0, fmt.Errorf("decode trend catalog: %w", err)
	}

	topics = make([]domain.TrendTopic, 0, len(c.Topics))
	for _, t := range c.Topics {
		if t.ID == "" || t.Title == "" || t.Views < 0 {
			skipped++
			continue
		}
		diff := domain.Difficulty(domain.NormalizeText(t.Difficulty))
		if !diff.IsValid() {
			diff = domain.DifficultyMedium
		}
		topics = append(topics, domain.TrendTopic{
			ID:    t.ID,
			Niche: domain.NormalizeText(t.Niche),
			Title: t.Title,
			Metrics: domain.TrendMetrics{
				Views:      t.Views,
				GrowthRate: t.GrowthRate,
				Difficulty: diff,
			},
		})
	}
	return topics, skipped, nil
}

// FilterNiches keeps topics whose niche is in niches. An empty niche list keeps everything.
func FilterNiches(topics []domain.TrendTopic, niches []string) []domain.TrendTopic {
	if len(niches) == 0 {
		return append([]domain.TrendTopic(nil), topics...)
	}
	want := make(map[string]struct{}, len(niches))
	for _, n := range niches {
		want[domain.NormalizeText(n)] = struct{}{}
	}

	var out []domain.TrendTopic
	for _, t := range topics {
		if _, ok := want[domain.NormalizeText(t.Niche)]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Dedupe drops repeated ids (first occurrence wins) and sorts by id.
func Dedupe(topics []domain.TrendTopic) []domain.TrendTopic {
	seen := make(map[string]struct{}, len(topics))
	out := make([]domain.TrendTopic, 0, len(topics))
	for _, t := range topics {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
