package domain

// TrendTopic is a scored topic candidate supplied by the external trend source.
type TrendTopic struct {
	ID      string
	Niche   string
	Title   string
	Metrics TrendMetrics
}

// TrendMetrics holds the raw signals the scheduler ranks by.
type TrendMetrics struct {
	Views      int64
	GrowthRate float64 // fractional, can be negative
	Difficulty Difficulty
}
