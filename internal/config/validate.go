package config

import (
	"fmt"
	"math"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if err := c.TrendSource.validate(); err != nil {
		return fmt.Errorf("trend_source: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_second and burst must be > 0 when enabled")
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.DefaultHorizonDays <= 0 {
		return fmt.Errorf("default_horizon_days must be > 0 (got %d)", s.DefaultHorizonDays)
	}
	if s.MaxHorizonDays < s.DefaultHorizonDays {
		return fmt.Errorf("max_horizon_days must be >= default_horizon_days (got %d < %d)", s.MaxHorizonDays, s.DefaultHorizonDays)
	}
	for name, w := range map[string]float64{
		"weight_growth":     s.WeightGrowth,
		"weight_views":      s.WeightViews,
		"weight_difficulty": s.WeightDifficulty,
	} {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%s must be a finite number >= 0 (got %v)", name, w)
		}
	}
	if s.WeightGrowth+s.WeightViews+s.WeightDifficulty == 0 {
		return fmt.Errorf("at least one weight must be > 0")
	}
	return nil
}

func (t *TrendSourceConfig) validate() error {
	switch t.Kind {
	case TrendSourceStatic:
		return nil
	case TrendSourceHTTP:
		u, err := url.Parse(t.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL when kind is %q (got %q)", TrendSourceHTTP, t.BaseURL)
		}
		if t.Timeout <= 0 {
			return fmt.Errorf("timeout must be > 0 (got %s)", t.Timeout)
		}
		return nil
	default:
		return fmt.Errorf("kind must be %q or %q (got %q)", TrendSourceStatic, TrendSourceHTTP, t.Kind)
	}
}
