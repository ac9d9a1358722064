package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/trend/httpsource"
	"github.com/heartmarshall/trendplan-backend/internal/adapter/trend/static"
	"github.com/heartmarshall/trendplan-backend/internal/config"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/transport/rest"
)

type trendSource interface {
	FetchTopics(ctx context.Context, niches []string) ([]domain.TrendTopic, error)
}

// newTrendSource builds the configured trend feed along with its
// non-critical health check.
func newTrendSource(cfg config.TrendSourceConfig, logger *slog.Logger) (trendSource, rest.Check, error) {
	switch cfg.Kind {
	case config.TrendSourceHTTP:
		src := httpsource.New(httpsource.Config{
			BaseURL:           cfg.BaseURL,
			APIKey:            cfg.APIKey,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
			MaxConcurrency:    cfg.MaxConcurrency,
			BreakerFailures:   cfg.BreakerFailures,
			BreakerOpenFor:    cfg.BreakerOpenFor,
		}, logger)
		check := rest.Check{
			Name: "trend_source",
			Ping: func(context.Context) error {
				if state := src.BreakerState(); state == "open" {
					return fmt.Errorf("%w: breaker %s", domain.ErrSourceUnavailable, state)
				}
				return nil
			},
		}
		return src, check, nil

	case config.TrendSourceStatic, "":
		var (
			src *static.Source
			err error
		)
		if cfg.StaticPath != "" {
			src, err = static.NewFromFile(cfg.StaticPath, logger)
		} else {
			src, err = static.New(logger)
		}
		if err != nil {
			return nil, rest.Check{}, fmt.Errorf("load static trend catalog: %w", err)
		}
		check := rest.Check{
			Name: "trend_source",
			Ping: func(context.Context) error { return nil },
		}
		return src, check, nil

	default:
		return nil, rest.Check{}, fmt.Errorf("unknown trend source kind %q", cfg.Kind)
	}
}
