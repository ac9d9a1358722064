// Package static serves trend topics from a JSON catalog held in memory.
// It stands in for a live feed in development and tests.
package static

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/trend"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

//go:embed catalog.json
var defaultCatalog []byte

// Source is a fixed trend catalog.
type Source struct {
	topics []domain.TrendTopic
	log    *slog.Logger
}

// New loads the embedded default catalog.
func New(logger *slog.Logger) (*Source, error) {
	return NewFromBytes(defaultCatalog, logger)
}

// NewFromFile loads a catalog from a JSON file.
func NewFromFile(path string, logger *slog.Logger) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("static: read catalog %s: %w", path, err)
	}
	return NewFromBytes(data, logger)
}

// NewFromBytes loads a catalog from raw JSON.
func NewFromBytes(data []byte, logger *slog.Logger) (*Source, error) {
	topics, skipped, err := trend.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("static: %w", err)
	}

	log := logger.With("adapter", "static_trends")
	if skipped > 0 {
		log.Warn("static catalog records skipped", slog.Int("skipped", skipped))
	}
	log.Info("static catalog loaded", slog.Int("topics", len(topics)))

	return &Source{topics: trend.Dedupe(topics), log: log}, nil
}

// FetchTopics returns the catalog topics in the given niches (all when empty).
func (s *Source) FetchTopics(ctx context.Context, niches []string) ([]domain.TrendTopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("static: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return trend.FilterNiches(s.topics, niches), nil
}
