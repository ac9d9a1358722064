// Package metrics exposes Prometheus metrics for calendar generation, the
// trend source and the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomePartial  = "partial" // trend source failed, catalog treated as empty
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// GenerationRunsTotal counts calendar generation runs by outcome.
	GenerationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_generation_runs_total",
			Help: "Total number of calendar generation runs",
		},
		[]string{"outcome", "overwrite"},
	)

	// GenerationDuration tracks end-to-end generation latency.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calendar_generation_duration_seconds",
			Help:    "Duration of calendar generation runs in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"outcome"},
	)

	// EntriesGeneratedTotal counts entries written by generation runs.
	EntriesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calendar_entries_generated_total",
			Help: "Total number of calendar entries created by generation",
		},
	)

	// ShortfallTotal counts open dates left unfilled, by reason.
	ShortfallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_generation_shortfall_total",
			Help: "Eligible dates left without an entry",
		},
		[]string{"reason"},
	)

	// TrendSourceFailuresTotal counts failed trend catalog fetches.
	TrendSourceFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trend_source_failures_total",
			Help: "Total number of trend catalog fetches that failed",
		},
	)

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// RecordGeneration records one finished generation run.
func RecordGeneration(outcome string, overwrite bool, d time.Duration, assigned, topicShortfall, capacityShortfall int) {
	GenerationRunsTotal.WithLabelValues(outcome, strconv.FormatBool(overwrite)).Inc()
	GenerationDuration.WithLabelValues(outcome).Observe(d.Seconds())
	if assigned > 0 {
		EntriesGeneratedTotal.Add(float64(assigned))
	}
	if topicShortfall > 0 {
		ShortfallTotal.WithLabelValues("topics").Add(float64(topicShortfall))
	}
	if capacityShortfall > 0 {
		ShortfallTotal.WithLabelValues("capacity").Add(float64(capacityShortfall))
	}
}

// RecordTrendSourceFailure records a failed trend catalog fetch.
func RecordTrendSourceFailure() {
	TrendSourceFailuresTotal.Inc()
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
