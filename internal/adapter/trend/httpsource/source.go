// Package httpsource fetches trending topics from a live feed over HTTP.
//
// One request is issued per niche (a single unfiltered request when no
// niches are given). Requests share a client-side rate limit and a circuit
// breaker; every failure surfaces as domain.ErrSourceUnavailable.
package httpsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/trend"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

const maxBodyBytes = 4 << 20

// Config configures the live feed client.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables the limiter
	Burst             int
	MaxConcurrency    int
	BreakerFailures   uint32        // consecutive failures that open the breaker
	BreakerOpenFor    time.Duration // how long the breaker stays open
}

// Source is a live trend feed client.
type Source struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]domain.TrendTopic]
	log        *slog.Logger
}

// New creates a Source.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerOpenFor <= 0 {
		cfg.BreakerOpenFor = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	log := logger.With("adapter", "http_trends")

	breaker := gobreaker.NewCircuitBreaker[[]domain.TrendTopic](gobreaker.Settings{
		Name:    "trend-feed",
		Timeout: cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("trend feed breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Source{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    breaker,
		log:        log,
	}
}

// FetchTopics returns topics for the given niches, deduplicated by id and
// sorted by id. The whole call is bounded by the configured timeout.
func (s *Source) FetchTopics(ctx context.Context, niches []string) ([]domain.TrendTopic, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	topics, err := s.breaker.Execute(func() ([]domain.TrendTopic, error) {
		return s.fetchAll(ctx, niches)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			s.log.WarnContext(ctx, "trend feed short-circuited", slog.String("error", err.Error()))
		} else {
			s.log.ErrorContext(ctx, "trend feed request failed", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("httpsource: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return topics, nil
}

// BreakerState reports the breaker state for health output.
func (s *Source) BreakerState() string {
	return s.breaker.State().String()
}

func (s *Source) fetchAll(ctx context.Context, niches []string) ([]domain.TrendTopic, error) {
	queries := normalizedNiches(niches)
	results := make([][]domain.TrendTopic, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrency)
	for i, niche := range queries {
		g.Go(func() error {
			topics, err := s.fetchOne(gctx, niche)
			if err != nil {
				return err
			}
			results[i] = topics
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.TrendTopic
	for _, r := range results {
		merged = append(merged, r...)
	}
	return trend.Dedupe(merged), nil
}

func (s *Source) fetchOne(ctx context.Context, niche string) ([]domain.TrendTopic, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := strings.TrimRight(s.cfg.BaseURL, "/") + "/v1/trends"
	if niche != "" {
		reqURL += "?" + url.Values{"niche": []string{niche}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", s.cfg.APIKey)
	}

	s.log.DebugContext(ctx, "trend feed request", slog.String("niche", niche))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request niche %q: %w", niche, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("niche %q: unexpected status %d", niche, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	topics, skipped, err := trend.Decode(body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.log.WarnContext(ctx, "trend feed records skipped", slog.String("niche", niche), slog.Int("skipped", skipped))
	}

	// The feed may ignore the niche parameter.
	if niche != "" {
		topics = trend.FilterNiches(topics, []string{niche})
	}
	return topics, nil
}

// normalizedNiches returns the distinct niches to query, or a single empty
// query when no niche filter applies.
func normalizedNiches(niches []string) []string {
	out := domain.NormalizeNiches(niches)
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
