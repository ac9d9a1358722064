package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// Weights configures the priority score:
//
//	score = Growth*norm(growth_rate) + Views*norm(views) - Difficulty*penalty(difficulty)
type Weights struct {
	Growth     float64
	Views      float64
	Difficulty float64
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{Growth: 0.5, Views: 0.3, Difficulty: 0.2}
}

// Validate rejects negative or non-finite weights and an all-zero record.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{"growth": w.Growth, "views": w.Views, "difficulty": w.Difficulty} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("weight %s must be a finite non-negative number (got %v)", name, v)
		}
	}
	if w.Growth+w.Views+w.Difficulty == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// ScoredTopic pairs a topic with its priority score for one run.
type ScoredTopic struct {
	Topic domain.TrendTopic
	Score float64
}

// Score computes priority scores for topics. Metrics are min-max normalized
// across the given set; when every value of a metric is equal it normalizes
// to 0.5. The output preserves input order.
func Score(topics []domain.TrendTopic, w Weights) []ScoredTopic {
	if len(topics) == 0 {
		return nil
	}

	growth := make([]float64, len(topics))
	views := make([]float64, len(topics))
	for i, t := range topics {
		growth[i] = t.Metrics.GrowthRate
		views[i] = float64(t.Metrics.Views)
	}
	normGrowth := minMax(growth)
	normViews := minMax(views)

	out := make([]ScoredTopic, len(topics))
	for i, t := range topics {
		out[i] = ScoredTopic{
			Topic: t,
			Score: w.Growth*normGrowth[i] + w.Views*normViews[i] - w.Difficulty*t.Metrics.Difficulty.Penalty(),
		}
	}
	return out
}

// Rank sorts scored topics by score desc, then growth rate desc, then ID asc.
func Rank(scored []ScoredTopic) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Topic.Metrics.GrowthRate != b.Topic.Metrics.GrowthRate {
			return a.Topic.Metrics.GrowthRate > b.Topic.Metrics.GrowthRate
		}
		return a.Topic.ID < b.Topic.ID
	})
}

// ScoreAndRank is Score followed by Rank.
func ScoreAndRank(topics []domain.TrendTopic, w Weights) []ScoredTopic {
	scored := Score(topics, w)
	Rank(scored)
	return scored
}

func minMax(values []float64) []float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]float64, len(values))
	span := hi - lo
	for i, v := range values {
		if span == 0 {
			out[i] = 0.5
			continue
		}
		out[i] = (v - lo) / span
	}
	return out
}
